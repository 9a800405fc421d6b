package transform

import (
	"fmt"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// Mask composites a foreground over a background bound at construction.
// Where the mask pixel is pure black the foreground shows through; every
// other mask pixel selects the background.
//
// To confine some transformation t to a region of img:
//
//	filtered, _ := t.Transform(img)
//	m, _ := NewMask(img, region)
//	out, _ := m.Transform(filtered)
type Mask struct {
	background *imaging.Image
	mask       *imaging.Image
}

// NewMask fails unless background and mask have identical dimensions.
func NewMask(background, mask *imaging.Image) (*Mask, error) {
	if background == nil || mask == nil {
		return nil, fmt.Errorf("%w: background and mask must not be nil", imaging.ErrInvalidArgument)
	}
	if !background.SameSize(mask) {
		return nil, fmt.Errorf("%w: mask is %dx%d but background is %dx%d",
			imaging.ErrInvalidArgument, mask.Width(), mask.Height(), background.Width(), background.Height())
	}
	return &Mask{background: background.Copy(), mask: mask.Copy()}, nil
}

func (m *Mask) Transform(foreground *imaging.Image) (*imaging.Image, error) {
	if err := requireImage(foreground); err != nil {
		return nil, err
	}
	if !foreground.SameSize(m.mask) {
		return nil, fmt.Errorf("%w: image is %dx%d but mask is %dx%d",
			imaging.ErrInvalidArgument, foreground.Width(), foreground.Height(), m.mask.Width(), m.mask.Height())
	}
	return imaging.Generate(m.mask.Width(), m.mask.Height(), func(row, col int) imaging.Pixel {
		if m.mask.At(row, col) == imaging.Black {
			return foreground.At(row, col)
		}
		return m.background.At(row, col)
	})
}

func (*Mask) Name() string { return "mask" }
func (*Mask) sealed()      {}
