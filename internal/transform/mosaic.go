package transform

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ironsheep/image-processor/internal/imaging"
)

// IntSource yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type IntSource interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed IntSource. A zero seed is replaced by one
// drawn from the clock.
func NewSource(seed int64) IntSource {
	s := uint64(seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Mosaic partitions an image into cells around randomly placed seeds and
// paints each cell with its seed's original color.
//
// A pixel belongs to the seed at the smallest Manhattan distance. On a tie
// the seed generated first wins.
type Mosaic struct {
	seeds int
	rng   IntSource
}

type seed struct {
	row, col int
	color    imaging.Pixel
}

// NewMosaic requires at least one seed and a random source.
func NewMosaic(seeds int, rng IntSource) (*Mosaic, error) {
	if seeds < 1 {
		return nil, fmt.Errorf("%w: number of seeds must be at least 1, got %d", imaging.ErrInvalidArgument, seeds)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source must not be nil", imaging.ErrInvalidArgument)
	}
	return &Mosaic{seeds: seeds, rng: rng}, nil
}

// Seeds returns the configured seed count.
func (m *Mosaic) Seeds() int { return m.seeds }

func (m *Mosaic) Transform(img *imaging.Image) (*imaging.Image, error) {
	if err := requireImage(img); err != nil {
		return nil, err
	}

	// Row is drawn before column for every seed.
	seeds := make([]seed, m.seeds)
	for i := range seeds {
		row := m.rng.IntN(img.Height())
		col := m.rng.IntN(img.Width())
		seeds[i] = seed{row: row, col: col, color: img.At(row, col)}
	}

	return imaging.Generate(img.Width(), img.Height(), func(row, col int) imaging.Pixel {
		best, bestDist := 0, math.MaxInt
		for i, s := range seeds {
			if d := abs(row-s.row) + abs(col-s.col); d < bestDist {
				best, bestDist = i, d
			}
		}
		return seeds[best].color
	})
}

func (*Mosaic) Name() string { return "mosaic" }
func (*Mosaic) sealed()      {}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
