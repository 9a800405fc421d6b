package imaging

import (
	"errors"
	"testing"
)

// createSolidImage creates an in-memory test image filled with one color
func createSolidImage(t *testing.T, width, height int, p Pixel) *Image {
	t.Helper()
	img, err := Generate(width, height, func(int, int) Pixel { return p })
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(t *testing.T, width, height int) *Image {
	t.Helper()
	img, err := Generate(width, height, func(row, col int) Pixel {
		switch {
		case col < width/2 && row < height/2:
			return Pixel{255, 0, 0} // Red top-left
		case col >= width/2 && row < height/2:
			return Pixel{0, 255, 0} // Green top-right
		case col < width/2 && row >= height/2:
			return Pixel{0, 0, 255} // Blue bottom-left
		default:
			return Pixel{255, 255, 255} // White bottom-right
		}
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createSolidImage(t, 100, 100, Pixel{255, 128, 64})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (Pixel{255, 128, 64}) {
		t.Errorf("RGB: got %v, want {255 128 64}", result.RGB)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   Pixel
		wantHex string
		wantHue int
		wantSat int
	}{
		{"pure red", Pixel{255, 0, 0}, "#FF0000", 0, 100},
		{"pure green", Pixel{0, 255, 0}, "#00FF00", 120, 100},
		{"pure blue", Pixel{0, 0, 255}, "#0000FF", 240, 100},
		{"white", Pixel{255, 255, 255}, "#FFFFFF", 0, 0},
		{"black", Pixel{0, 0, 0}, "#000000", 0, 0},
		{"gray", Pixel{128, 128, 128}, "#808080", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createSolidImage(t, 10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.HSL.S != tt.wantSat {
				t.Errorf("Saturation: got %d, want %d", result.HSL.S, tt.wantSat)
			}
		})
	}
}

func TestSampleColor_XIsColumn(t *testing.T) {
	img := createPatternImage(t, 10, 10)

	// x=8 is in the right half, y=1 in the top half: green.
	result, err := SampleColor(img, 8, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#00FF00" {
		t.Errorf("Hex: got %s, want #00FF00", result.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createSolidImage(t, 100, 100, Pixel{255, 0, 0})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Fatal("SampleColor should fail for out-of-bounds coordinates")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(t, 100, 100)

	result, err := DominantColors(img, 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	// Four quadrants, four colors.
	if len(result.Colors) != 4 {
		t.Fatalf("color count: got %d, want 4", len(result.Colors))
	}
	for _, c := range result.Colors {
		if c.Percentage != 25 {
			t.Errorf("%s percentage: got %v, want 25", c.Hex, c.Percentage)
		}
	}
	// Equal frequencies are ordered by hex.
	if result.Colors[0].Hex != "#0000F0" {
		t.Errorf("first color: got %s, want #0000F0", result.Colors[0].Hex)
	}
}

func TestDominantColors_Limit(t *testing.T) {
	img := createPatternImage(t, 100, 100)

	result, err := DominantColors(img, 2)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("color count: got %d, want 2", len(result.Colors))
	}
}

func TestDominantColors_Quantization(t *testing.T) {
	img := mustNew(t, [][]Pixel{{{0xF0, 0xF0, 0xF0}, {0xFA, 0xFA, 0xFA}, {0x10, 0x10, 0x10}}})

	result, err := DominantColors(img, 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Fatalf("color count: got %d, want 2", len(result.Colors))
	}
	if result.Colors[0].Hex != "#F0F0F0" {
		t.Errorf("dominant color: got %s, want #F0F0F0", result.Colors[0].Hex)
	}
}

func TestDominantColors_InvalidCount(t *testing.T) {
	img := createSolidImage(t, 2, 2, Pixel{})
	if _, err := DominantColors(img, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DominantColors(0) should fail with ErrInvalidArgument, got %v", err)
	}
}
