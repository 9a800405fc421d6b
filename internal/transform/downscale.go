package transform

import (
	"fmt"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// Downscale shrinks an image by nearest-neighbor sampling.
type Downscale struct {
	width, height int
}

// NewDownscale requires a positive target size. Whether the target is
// smaller than the source is checked by Transform.
func NewDownscale(width, height int) (*Downscale, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: target size must be positive, got %dx%d", imaging.ErrInvalidArgument, width, height)
	}
	return &Downscale{width: width, height: height}, nil
}

func (d *Downscale) Transform(img *imaging.Image) (*imaging.Image, error) {
	if err := requireImage(img); err != nil {
		return nil, err
	}
	oldW, oldH := img.Width(), img.Height()
	if d.width > oldW {
		return nil, fmt.Errorf("%w: new width %d cannot be larger than original width %d", imaging.ErrInvalidArgument, d.width, oldW)
	}
	if d.height > oldH {
		return nil, fmt.Errorf("%w: new height %d cannot be larger than original height %d", imaging.ErrInvalidArgument, d.height, oldH)
	}

	return imaging.Generate(d.width, d.height, func(row, col int) imaging.Pixel {
		return img.At(sourceIndex(row, oldH, d.height), sourceIndex(col, oldW, d.width))
	})
}

// sourceIndex is round-half-up(i * from / to) in exact integer arithmetic,
// clamped to the source range.
func sourceIndex(i, from, to int) int {
	return imaging.Clamp((2*from*i+to)/(2*to), 0, from-1)
}

// Size returns the target width and height.
func (d *Downscale) Size() (width, height int) { return d.width, d.height }

func (*Downscale) Name() string { return "downscale" }
func (*Downscale) sealed()      {}
