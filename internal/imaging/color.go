package imaging

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel's color in several representations.
type ColorResult struct {
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB Pixel    `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleColor returns the color at column x, row y.
//
// Coordinates are 0-based with origin at top-left:
//   - Valid X range: 0 to width-1
//   - Valid Y range: 0 to height-1
func SampleColor(img *Image, x, y int) (*ColorResult, error) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds", ErrInvalidArgument, x, y)
	}
	result := describe(img.At(y, x))
	return &result, nil
}

func describe(p Pixel) ColorResult {
	c := toColorful(p)
	h, s, l := c.Hsl()
	return ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: p,
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

func toColorful(p Pixel) colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        Pixel   `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns up to count of the most common colors in img.
//
// # Color Quantization
//
// To group similar colors each component is quantized to a multiple of 16:
//
//	quantized = (original / 16) * 16
//
// so #F0F0F0 and #FAFAFA fall into the same bucket. Ties in frequency are
// ordered by hex string so the result is deterministic.
func DominantColors(img *Image, count int) (*DominantColorsResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: color count must be positive, got %d", ErrInvalidArgument, count)
	}

	counts := make(map[Pixel]int)
	for _, p := range img.pix {
		q := Pixel{R: p.R / 16 * 16, G: p.G / 16 * 16, B: p.B / 16 * 16}
		counts[q]++
	}

	total := float64(len(img.pix))
	colors := make([]ColorFrequency, 0, len(counts))
	for p, n := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        strings.ToUpper(toColorful(p).Hex()),
			Percentage: float64(n) / total * 100,
			RGB:        p,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
