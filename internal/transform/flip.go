package transform

import "github.com/ironsheep/image-processor/internal/imaging"

// HorizontalFlip mirrors an image left to right.
type HorizontalFlip struct{}

func (HorizontalFlip) Transform(img *imaging.Image) (*imaging.Image, error) {
	if err := requireImage(img); err != nil {
		return nil, err
	}
	width := img.Width()
	return imaging.Generate(width, img.Height(), func(row, col int) imaging.Pixel {
		return img.At(row, width-1-col)
	})
}

func (HorizontalFlip) Name() string { return "horizontal-flip" }
func (HorizontalFlip) sealed()      {}

// VerticalFlip mirrors an image top to bottom.
type VerticalFlip struct{}

func (VerticalFlip) Transform(img *imaging.Image) (*imaging.Image, error) {
	if err := requireImage(img); err != nil {
		return nil, err
	}
	height := img.Height()
	return imaging.Generate(img.Width(), height, func(row, col int) imaging.Pixel {
		return img.At(height-1-row, col)
	})
}

func (VerticalFlip) Name() string { return "vertical-flip" }
func (VerticalFlip) sealed()      {}
