package imaging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ppmExtension selects the plain-text codec; every other extension goes
// through the general-purpose codecs.
const ppmExtension = ".ppm"

// IsPPM reports whether path names a PPM file (case-insensitive extension).
func IsPPM(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ppmExtension)
}

// Load reads an image file from disk.
//
// Files ending in ".ppm" are parsed as plain-text PPM. Anything else is
// decoded by the general-purpose codecs: JPEG, PNG, GIF, TIFF and BMP,
// chosen by extension.
//
// # Errors
//
//   - the file does not exist or cannot be read
//   - the extension is not a supported image format
//   - the file contents are not a valid image of that format
//
// All errors wrap ErrInvalidArgument.
func Load(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	if IsPPM(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, openError(path, err)
		}
		defer f.Close()
		return DecodePPM(f)
	}

	if err := checkFormat(path); err != nil {
		return nil, err
	}

	src, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, openError(path, err)
		}
		return nil, fmt.Errorf("%w: failed to decode image %q: %v", ErrInvalidArgument, path, err)
	}
	return FromImage(src)
}

// Save writes img to path, picking the encoder from the extension.
//
// An existing file at path is overwritten.
func Save(img *Image, path string) error {
	if img == nil || path == "" {
		return fmt.Errorf("%w: image and path must not be empty", ErrInvalidArgument)
	}

	if IsPPM(path) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("%w: export file location %q is invalid: %v", ErrInvalidArgument, path, err)
		}
		if err := EncodePPM(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: failed to write %q: %v", ErrInvalidArgument, path, err)
		}
		return nil
	}

	if err := checkFormat(path); err != nil {
		return err
	}
	if err := imaging.Save(img.NRGBA(), path); err != nil {
		return fmt.Errorf("%w: failed to save image to %q: %v", ErrInvalidArgument, path, err)
	}
	return nil
}

func checkFormat(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		return fmt.Errorf("%w: %q is not a supported image format", ErrInvalidArgument, ext)
	}
	return nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: file %q not found", ErrInvalidArgument, path)
	}
	return fmt.Errorf("%w: failed to open image %q: %v", ErrInvalidArgument, path, err)
}
