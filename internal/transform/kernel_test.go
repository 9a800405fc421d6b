package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/image-processor/internal/imaging"
)

func TestKernel_Sizes(t *testing.T) {
	require.Equal(t, 3, NewBlur().Size())
	require.Equal(t, 5, NewSharpen().Size())
}

func TestKernel_SolidImageUnchanged(t *testing.T) {
	p := imaging.Pixel{R: 40, G: 120, B: 250}
	for _, k := range []*Kernel{NewBlur(), NewSharpen()} {
		t.Run(k.Name(), func(t *testing.T) {
			img := solidImage(t, 4, 3, p)
			out := apply(t, k, img)
			require.True(t, out.Equal(img))
		})
	}
}

func TestKernel_SinglePixel(t *testing.T) {
	// Every neighbor clamps to the only pixel.
	p := imaging.Pixel{R: 7, G: 77, B: 177}
	for _, k := range []*Kernel{NewBlur(), NewSharpen()} {
		out := apply(t, k, rowImage(t, p))
		require.Equal(t, p, out.At(0, 0), k.Name())
	}
}

func TestBlur_EdgeReplication(t *testing.T) {
	// One row: every row offset clamps to row 0, so column weights are 4/16, 8/16, 4/16.
	grey := func(v uint8) imaging.Pixel { return imaging.Pixel{R: v, G: v, B: v} }
	out := apply(t, NewBlur(), rowImage(t, grey(0), grey(160), grey(0)))

	require.Equal(t, grey(40), out.At(0, 0)) // 0*12/16 + 160*4/16
	require.Equal(t, grey(80), out.At(0, 1)) // 160*8/16
	require.Equal(t, grey(40), out.At(0, 2))
}

func TestSharpen_EdgeReplication(t *testing.T) {
	// Summed over the replicated rows the column weights are -5/8, 4/8, 10/8, 4/8, -5/8.
	grey := func(v uint8) imaging.Pixel { return imaging.Pixel{R: v, G: v, B: v} }
	out := apply(t, NewSharpen(), rowImage(t, grey(0), grey(100), grey(0)))

	require.Equal(t, grey(50), out.At(0, 0))
	require.Equal(t, grey(125), out.At(0, 1))
	require.Equal(t, grey(50), out.At(0, 2))
}

func TestSharpen_ClampsToRange(t *testing.T) {
	grey := func(v uint8) imaging.Pixel { return imaging.Pixel{R: v, G: v, B: v} }
	out := apply(t, NewSharpen(), rowImage(t, grey(255), grey(0), grey(255)))

	// Center: 255*(-5 + 4 + 4 - 5)/8 is negative.
	require.Equal(t, grey(0), out.At(0, 1))
	// Left edge: 255*(-5 + 4 + 10 - 5)/8 = 127.5, rounded up.
	require.Equal(t, grey(128), out.At(0, 0))

	out = apply(t, NewSharpen(), rowImage(t, grey(0), grey(255), grey(0)))
	// Center: 255*10/8 saturates.
	require.Equal(t, grey(255), out.At(0, 1))
}
