package transform

import "github.com/ironsheep/image-processor/internal/imaging"

// Luma weights (Rec. 709) shared by Greyscale and Visualize(Luma).
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// ColorMatrix multiplies each pixel's (R, G, B) column vector by a fixed 3x3
// matrix, rounding half-up and clamping each component.
type ColorMatrix struct {
	name   string
	matrix [3][3]float64
}

// NewGreyscale returns the luma greyscale filter; every output pixel has R == G == B.
func NewGreyscale() *ColorMatrix {
	row := [3]float64{lumaR, lumaG, lumaB}
	return &ColorMatrix{name: "greyscale", matrix: [3][3]float64{row, row, row}}
}

// NewSepia returns the sepia-tone filter.
func NewSepia() *ColorMatrix {
	return &ColorMatrix{
		name: "sepia",
		matrix: [3][3]float64{
			{0.393, 0.769, 0.189},
			{0.349, 0.686, 0.168},
			{0.272, 0.534, 0.131},
		},
	}
}

func (m *ColorMatrix) Transform(img *imaging.Image) (*imaging.Image, error) {
	return perPixel(img, m.apply)
}

func (m *ColorMatrix) apply(p imaging.Pixel) imaging.Pixel {
	in := [3]float64{float64(p.R), float64(p.G), float64(p.B)}
	var out [3]uint8
	for i, row := range m.matrix {
		out[i] = imaging.RoundChannel(row[0]*in[0] + row[1]*in[1] + row[2]*in[2])
	}
	return imaging.Pixel{R: out[0], G: out[1], B: out[2]}
}

func (m *ColorMatrix) Name() string { return m.name }
func (*ColorMatrix) sealed()        {}
