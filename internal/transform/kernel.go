package transform

import "github.com/ironsheep/image-processor/internal/imaging"

// Kernel convolves an image with a fixed odd-sized square kernel.
//
// Weights are stored as integers over a common divisor, e.g. the blur kernel
// is:
//
//	1 2 1
//	2 4 2
//	1 2 1
//
// divided by 16. Border pixels use clamped (replicated) edge values.
// Each channel sum is rounded half-up and clamped to [0, 255].
type Kernel struct {
	name    string
	weights [][]float64
	divisor float64
}

// NewBlur returns the 3x3 Gaussian-like blur.
func NewBlur() *Kernel {
	return &Kernel{
		name: "blur",
		weights: [][]float64{
			{1, 2, 1},
			{2, 4, 2},
			{1, 2, 1},
		},
		divisor: 16,
	}
}

// NewSharpen returns the 5x5 sharpening kernel: a negative outer ring of
// -1/8, an inner ring of 1/4 and a center of 1.
func NewSharpen() *Kernel {
	return &Kernel{
		name: "sharpen",
		weights: [][]float64{
			{-1, -1, -1, -1, -1},
			{-1, 2, 2, 2, -1},
			{-1, 2, 8, 2, -1},
			{-1, 2, 2, 2, -1},
			{-1, -1, -1, -1, -1},
		},
		divisor: 8,
	}
}

// Size is the kernel's side length.
func (k *Kernel) Size() int { return len(k.weights) }

func (k *Kernel) Transform(img *imaging.Image) (*imaging.Image, error) {
	if err := requireImage(img); err != nil {
		return nil, err
	}
	width, height := img.Width(), img.Height()
	half := k.Size() / 2

	return imaging.Generate(width, height, func(row, col int) imaging.Pixel {
		var r, g, b float64
		for ky := -half; ky <= half; ky++ {
			for kx := -half; kx <= half; kx++ {
				p := img.At(imaging.Clamp(row+ky, 0, height-1), imaging.Clamp(col+kx, 0, width-1))
				w := k.weights[ky+half][kx+half] / k.divisor
				r += w * float64(p.R)
				g += w * float64(p.G)
				b += w * float64(p.B)
			}
		}
		return imaging.Pixel{
			R: imaging.RoundChannel(r),
			G: imaging.RoundChannel(g),
			B: imaging.RoundChannel(b),
		}
	})
}

func (k *Kernel) Name() string { return k.name }
func (*Kernel) sealed()        {}
