// Package transform implements the image transformations: flips,
// brightness, color matrices (greyscale, sepia), channel visualization,
// convolution kernels (blur, sharpen), mask compositing, mosaic and
// nearest-neighbor downscaling.
//
// Each variant validates its parameters in its constructor and returns
// imaging.ErrInvalidArgument (wrapped) on bad input. Transform always
// returns a new image and never modifies its argument.
//
// Mosaic draws seed positions from an IntSource supplied by the caller, so
// results are reproducible with a seeded source:
//
//	m, _ := transform.NewMosaic(50, rand.New(rand.NewPCG(1, 2)))
//	out, _ := m.Transform(img)
package transform
