package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// scenarioGrid is the 3x3 gradient used across the package tests.
func scenarioGrid() [][]Pixel {
	return [][]Pixel{
		{{128, 16, 216}, {114, 17, 219}, {105, 18, 222}},
		{{114, 17, 219}, {97, 18, 224}, {84, 18, 227}},
		{{105, 18, 222}, {84, 18, 227}, {61, 18, 231}},
	}
}

func mustNew(t *testing.T, grid [][]Pixel) *Image {
	t.Helper()
	img, err := New(grid)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return img
}

func TestNew(t *testing.T) {
	img := mustNew(t, scenarioGrid())

	if img.Width() != 3 || img.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3", img.Width(), img.Height())
	}
	if got := img.At(0, 0); got != (Pixel{128, 16, 216}) {
		t.Errorf("At(0,0): got %v, want {128 16 216}", got)
	}
	if got := img.At(2, 1); got != (Pixel{84, 18, 227}) {
		t.Errorf("At(2,1): got %v, want {84 18 227}", got)
	}
}

func TestNew_NonSquare(t *testing.T) {
	img := mustNew(t, [][]Pixel{
		{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}},
		{{5, 5, 5}, {6, 6, 6}, {7, 7, 7}, {8, 8, 8}},
	})

	if img.Width() != 4 {
		t.Errorf("Width: got %d, want 4", img.Width())
	}
	if img.Height() != 2 {
		t.Errorf("Height: got %d, want 2", img.Height())
	}
	if got := img.At(1, 3); got != (Pixel{8, 8, 8}) {
		t.Errorf("At(1,3): got %v, want {8 8 8}", got)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		grid [][]Pixel
	}{
		{"nil grid", nil},
		{"no rows", [][]Pixel{}},
		{"empty first row", [][]Pixel{{}}},
		{"short row", [][]Pixel{{{1, 2, 3}, {4, 5, 6}}, {{7, 8, 9}}}},
		{"long row", [][]Pixel{{{1, 2, 3}}, {{4, 5, 6}, {7, 8, 9}}}},
		{"nil row", [][]Pixel{{{1, 2, 3}}, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.grid)
			if err == nil {
				t.Fatal("New should fail")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	grid := scenarioGrid()
	img := mustNew(t, grid)

	grid[0][0] = Pixel{0, 0, 0}
	grid[1] = []Pixel{{9, 9, 9}, {9, 9, 9}, {9, 9, 9}}

	if got := img.At(0, 0); got != (Pixel{128, 16, 216}) {
		t.Errorf("mutating the input grid changed the image: got %v", got)
	}
	if got := img.At(1, 0); got != (Pixel{114, 17, 219}) {
		t.Errorf("replacing an input row changed the image: got %v", got)
	}
}

func TestPixels_ReturnsCopy(t *testing.T) {
	img := mustNew(t, scenarioGrid())

	first := img.Pixels()
	first[0][0] = Pixel{1, 2, 3}

	second := img.Pixels()
	if second[0][0] != (Pixel{128, 16, 216}) {
		t.Errorf("mutating a returned grid changed the image: got %v", second[0][0])
	}
	if len(second) != 3 || len(second[2]) != 3 {
		t.Errorf("Pixels shape: got %dx%d, want 3x3", len(second), len(second[2]))
	}
}

func TestCopy(t *testing.T) {
	img := mustNew(t, scenarioGrid())
	cp := img.Copy()

	if cp == img {
		t.Fatal("Copy returned the same pointer")
	}
	if !cp.Equal(img) {
		t.Error("Copy should be equal to the original")
	}
}

func TestEqual(t *testing.T) {
	a := mustNew(t, scenarioGrid())
	b := mustNew(t, scenarioGrid())

	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}

	grid := scenarioGrid()
	grid[2][2] = Pixel{0, 0, 0}
	c := mustNew(t, grid)
	if a.Equal(c) {
		t.Error("images with a different pixel should not be equal")
	}

	d := mustNew(t, [][]Pixel{{{128, 16, 216}}})
	if a.Equal(d) {
		t.Error("images with different sizes should not be equal")
	}
	if a.Equal(nil) {
		t.Error("image should not equal nil")
	}
}

func TestAt_OutOfRangePanics(t *testing.T) {
	img := mustNew(t, scenarioGrid())

	defer func() {
		if recover() == nil {
			t.Error("At should panic for out-of-range coordinates")
		}
	}()
	img.At(3, 0)
}

func TestGenerate(t *testing.T) {
	img, err := Generate(4, 2, func(row, col int) Pixel {
		return Pixel{R: uint8(row), G: uint8(col), B: 7}
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 4x2", img.Width(), img.Height())
	}
	if got := img.At(1, 3); got != (Pixel{1, 3, 7}) {
		t.Errorf("At(1,3): got %v, want {1 3 7}", got)
	}

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		if _, err := Generate(dims[0], dims[1], func(int, int) Pixel { return Pixel{} }); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Generate(%d,%d) should fail with ErrInvalidArgument, got %v", dims[0], dims[1], err)
		}
	}
}

func TestNRGBA_FromImage_RoundTrip(t *testing.T) {
	img := mustNew(t, scenarioGrid())

	nrgba := img.NRGBA()
	if nrgba.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Fatalf("NRGBA bounds: got %v", nrgba.Bounds())
	}
	c := nrgba.NRGBAAt(2, 0) // x=col 2, y=row 0
	if c != (color.NRGBA{105, 18, 222, 255}) {
		t.Errorf("NRGBAAt(2,0): got %v", c)
	}

	back, err := FromImage(nrgba)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !back.Equal(img) {
		t.Error("FromImage(NRGBA()) should reproduce the image")
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 12, 21))
	src.Set(10, 20, color.RGBA{1, 2, 3, 255})
	src.Set(11, 20, color.RGBA{4, 5, 6, 255})

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 1 {
		t.Fatalf("dimensions: got %dx%d, want 2x1", img.Width(), img.Height())
	}
	if img.At(0, 1) != (Pixel{4, 5, 6}) {
		t.Errorf("At(0,1): got %v, want {4 5 6}", img.At(0, 1))
	}
}

func TestFromImage_Empty(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromImage of empty image should fail with ErrInvalidArgument, got %v", err)
	}
}

func TestPixel_RGBA(t *testing.T) {
	r, g, b, a := Pixel{255, 128, 0}.RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("RGBA: got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}
