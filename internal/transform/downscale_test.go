package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ironsheep/image-processor/internal/imaging"
)

func TestNewDownscale_Invalid(t *testing.T) {
	for _, size := range [][2]int{{0, 1}, {1, 0}, {-2, 4}} {
		_, err := NewDownscale(size[0], size[1])
		require.ErrorIs(t, err, imaging.ErrInvalidArgument, "size %v", size)
	}
}

func TestDownscale_RejectsUpscale(t *testing.T) {
	img := scenarioImage(t)

	d, err := NewDownscale(4, 2)
	require.NoError(t, err)
	_, err = d.Transform(img)
	require.ErrorIs(t, err, imaging.ErrInvalidArgument)
	require.Contains(t, err.Error(), "width")

	d, err = NewDownscale(2, 4)
	require.NoError(t, err)
	_, err = d.Transform(img)
	require.ErrorIs(t, err, imaging.ErrInvalidArgument)
	require.Contains(t, err.Error(), "height")
}

func TestDownscale_Samples(t *testing.T) {
	img := scenarioImage(t)
	d, err := NewDownscale(2, 2)
	require.NoError(t, err)

	out := apply(t, d, img)

	// Ratio 1.5: indices 0 and round(1.5) = 2.
	require.Equal(t, [][]imaging.Pixel{
		{img.At(0, 0), img.At(0, 2)},
		{img.At(2, 0), img.At(2, 2)},
	}, out.Pixels())
	w, h := d.Size()
	require.Equal(t, 2, w)
	require.Equal(t, 2, h)
}

func TestDownscale_NonUniformRatios(t *testing.T) {
	grid := make([][]imaging.Pixel, 2)
	for row := range grid {
		for col := 0; col < 5; col++ {
			grid[row] = append(grid[row], imaging.Pixel{R: uint8(row), G: uint8(col)})
		}
	}
	img, err := imaging.New(grid)
	require.NoError(t, err)

	d, err := NewDownscale(3, 1)
	require.NoError(t, err)
	out := apply(t, d, img)

	// xRatio 5/3: columns 0, round(1.67) = 2, round(3.33) = 3.
	require.Equal(t, [][]imaging.Pixel{{img.At(0, 0), img.At(0, 2), img.At(0, 3)}}, out.Pixels())
}

func TestSourceIndex(t *testing.T) {
	tests := []struct {
		i, from, to int
		want        int
	}{
		{0, 3, 2, 0},
		{1, 3, 2, 2},     // 1.5
		{21, 34, 28, 26}, // 25.5 exactly
		{1, 5, 3, 2},     // 1.67
		{2, 5, 3, 3},     // 3.33
		{1, 7, 2, 4},     // 3.5
		{3, 9, 4, 7},     // 6.75
		{3, 4, 4, 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, sourceIndex(tt.i, tt.from, tt.to), "i=%d %d->%d", tt.i, tt.from, tt.to)
	}
}

func TestDownscale_HalfTiesRoundUp(t *testing.T) {
	grid := [][]imaging.Pixel{make([]imaging.Pixel, 34)}
	for col := range grid[0] {
		grid[0][col] = imaging.Pixel{R: uint8(col)}
	}
	img, err := imaging.New(grid)
	require.NoError(t, err)

	d, err := NewDownscale(28, 1)
	require.NoError(t, err)
	out := apply(t, d, img)

	require.Equal(t, uint8(26), out.At(0, 21).R)
}

func TestDownscale_SameSizeIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		img := imageGen().Draw(rt, "img")
		d, err := NewDownscale(img.Width(), img.Height())
		require.NoError(rt, err)
		out, err := d.Transform(img)
		require.NoError(rt, err)
		require.True(rt, out.Equal(img))
	})
}

func TestDownscale_IndicesStayInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		img := imageGen().Draw(rt, "img")
		w := rapid.IntRange(1, img.Width()).Draw(rt, "w")
		h := rapid.IntRange(1, img.Height()).Draw(rt, "h")
		d, err := NewDownscale(w, h)
		require.NoError(rt, err)
		out, err := d.Transform(img)
		require.NoError(rt, err)
		require.Equal(rt, w, out.Width())
		require.Equal(rt, h, out.Height())
	})
}
