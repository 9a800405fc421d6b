package transform

import (
	"fmt"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// Brightness adds a constant to every channel, saturating at 0 and 255.
// A positive amount brightens, a negative one darkens.
type Brightness struct {
	amount int
}

// NewBrightness rejects an amount of zero.
func NewBrightness(amount int) (*Brightness, error) {
	if amount == 0 {
		return nil, fmt.Errorf("%w: the adjustment amount must be non-zero", imaging.ErrInvalidArgument)
	}
	return &Brightness{amount: amount}, nil
}

// Amount returns the signed adjustment.
func (b *Brightness) Amount() int { return b.amount }

func (b *Brightness) Transform(img *imaging.Image) (*imaging.Image, error) {
	// Anything beyond ±255 saturates identically; bounding it keeps the sum in range.
	amount := imaging.Clamp(b.amount, -255, 255)
	return perPixel(img, func(p imaging.Pixel) imaging.Pixel {
		return imaging.Pixel{
			R: imaging.ClampChannel(int(p.R) + amount),
			G: imaging.ClampChannel(int(p.G) + amount),
			B: imaging.ClampChannel(int(p.B) + amount),
		}
	})
}

func (b *Brightness) Name() string {
	if b.amount > 0 {
		return "brighten"
	}
	return "darken"
}

func (*Brightness) sealed() {}
