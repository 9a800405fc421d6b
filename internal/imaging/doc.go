// Package imaging provides the image value type and the helpers shared by
// every transformation.
//
// An Image is an immutable, rectangular grid of 8-bit RGB pixels. It copies
// the grid it is built from and hands out fresh copies on every read, so no
// caller can reach into another caller's pixels.
//
// # Coordinate System
//
// Pixels are addressed as (row, col), both 0-based:
//   - row 0 is the top of the image, increasing downward
//   - col 0 is the left edge, increasing rightward
//
// SampleColor keeps the (x, y) order used by tool clients, where x is the
// column and y the row.
//
// # Rounding and Clamping
//
// Filters compute in float64, round half-up (2.5 -> 3) and saturate into
// [0, 255]. RoundChannel does both in one step.
//
// # File Formats
//
// Load and Save dispatch on extension. ".ppm" is handled by the plain-text
// P3 codec in this package, which round-trips exactly. Every other supported
// extension (jpg, jpeg, png, gif, tif, tiff, bmp) is delegated to
// github.com/disintegration/imaging.
//
// # Error Handling
//
// Every error wraps ErrInvalidArgument:
//   - empty or ragged pixel grids
//   - coordinates outside image bounds
//   - malformed PPM headers or bodies, unsupported maxValue
//   - missing files, unsupported extensions, unwritable paths
package imaging
