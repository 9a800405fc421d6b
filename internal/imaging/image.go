package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrInvalidArgument is the single error kind reported by the image engine.
//
// Every failure (bad grid, bad parameter, dimension mismatch, unknown name,
// malformed file) wraps it, so callers test with errors.Is and show the
// message to the user.
var ErrInvalidArgument = errors.New("invalid argument")

// Pixel is an 8-bit RGB color.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Black is the mask color that selects the foreground.
var Black = Pixel{}

// Image is an immutable, non-empty, rectangular grid of pixels.
//
// Rows are indexed from the top (row 0) and columns from the left (col 0).
// An Image never shares storage with its callers: New copies the grid it is
// given and Pixels returns a fresh copy on every call.
type Image struct {
	width  int
	height int
	pix    []Pixel // row-major, len == width*height
}

// New builds an Image from a row-major grid.
//
// The grid must contain at least one row, the first row at least one pixel,
// and every row must have the same length. A nil or short row counts as a
// missing pixel.
func New(grid [][]Pixel) (*Image, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: the pixel grid must contain at least one pixel", ErrInvalidArgument)
	}

	width := len(grid[0])
	pix := make([]Pixel, 0, width*len(grid))
	for i, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrInvalidArgument, i, len(row), width)
		}
		pix = append(pix, row...)
	}

	return &Image{width: width, height: len(grid), pix: pix}, nil
}

// Generate builds a width x height Image whose pixel at (row, col) is fn(row, col).
func Generate(width, height int, fn func(row, col int) Pixel) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: image dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}

	pix := make([]Pixel, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			pix[row*width+col] = fn(row, col)
		}
	}
	return &Image{width: width, height: height, pix: pix}, nil
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image) Height() int { return img.height }

// At returns the pixel at (row, col). It panics if the coordinates are out of range.
func (img *Image) At(row, col int) Pixel {
	if row < 0 || row >= img.height || col < 0 || col >= img.width {
		panic(fmt.Sprintf("imaging: pixel (%d,%d) outside %dx%d image", row, col, img.width, img.height))
	}
	return img.pix[row*img.width+col]
}

// Pixels returns a deep copy of the grid as [height][width]Pixel.
func (img *Image) Pixels() [][]Pixel {
	grid := make([][]Pixel, img.height)
	for row := range grid {
		grid[row] = make([]Pixel, img.width)
		copy(grid[row], img.pix[row*img.width:(row+1)*img.width])
	}
	return grid
}

// Copy returns an independent Image with the same content.
func (img *Image) Copy() *Image {
	pix := make([]Pixel, len(img.pix))
	copy(pix, img.pix)
	return &Image{width: img.width, height: img.height, pix: pix}
}

// SameSize reports whether both images have identical dimensions.
func (img *Image) SameSize(other *Image) bool {
	return img.width == other.width && img.height == other.height
}

// Equal reports whether both images have the same dimensions and pixels.
func (img *Image) Equal(other *Image) bool {
	if other == nil || !img.SameSize(other) {
		return false
	}
	for i := range img.pix {
		if img.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// NRGBA converts the image to an opaque *image.NRGBA anchored at (0,0).
func (img *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for i, p := range img.pix {
		out.Pix[i*4+0] = p.R
		out.Pix[i*4+1] = p.G
		out.Pix[i*4+2] = p.B
		out.Pix[i*4+3] = 0xff
	}
	return out
}

// FromImage converts any decoded image to an Image, dropping alpha.
//
// The source must have a non-empty bounds rectangle.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: decoded image has no pixels", ErrInvalidArgument)
	}

	nrgba := imaging.Clone(src)
	width, height := bounds.Dx(), bounds.Dy()
	return Generate(width, height, func(row, col int) Pixel {
		off := nrgba.PixOffset(col, row)
		return Pixel{R: nrgba.Pix[off], G: nrgba.Pix[off+1], B: nrgba.Pix[off+2]}
	})
}

// RGBA implements color.Color so a Pixel can be handed to the image packages directly.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff}.RGBA()
}
