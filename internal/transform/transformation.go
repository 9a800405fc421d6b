package transform

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// Transformation turns one image into a new image.
//
// The set of implementations is closed: every variant lives in this package
// and carries its own parameters, validated when it is constructed.
// Transform never modifies its argument.
type Transformation interface {
	// Transform applies the operation and returns a new image.
	Transform(img *imaging.Image) (*imaging.Image, error)

	// Name is a short lowercase label such as "blur" or "visualize-red".
	Name() string

	sealed()
}

func requireImage(img *imaging.Image) error {
	if img == nil {
		return fmt.Errorf("%w: image must not be nil", imaging.ErrInvalidArgument)
	}
	return nil
}

// perPixel maps fn over every pixel of img.
func perPixel(img *imaging.Image, fn func(imaging.Pixel) imaging.Pixel) (*imaging.Image, error) {
	if err := requireImage(img); err != nil {
		return nil, err
	}
	return imaging.Generate(img.Width(), img.Height(), func(row, col int) imaging.Pixel {
		return fn(img.At(row, col))
	})
}

// ParseFilter returns the filter transformation named by token:
// "blur", "sharpen", "greyscale" (or "grayscale") or "sepia".
func ParseFilter(token string) (Transformation, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "blur":
		return NewBlur(), nil
	case "sharpen":
		return NewSharpen(), nil
	case "greyscale", "grayscale":
		return NewGreyscale(), nil
	case "sepia":
		return NewSepia(), nil
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", imaging.ErrInvalidArgument, token)
	}
}

// ParseDirection returns the flip named by token: "horizontal" or "vertical".
func ParseDirection(token string) (Transformation, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "horizontal", "h":
		return HorizontalFlip{}, nil
	case "vertical", "v":
		return VerticalFlip{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown flip direction %q", imaging.ErrInvalidArgument, token)
	}
}
