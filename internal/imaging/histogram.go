package imaging

import (
	"github.com/anthonynsimon/bild/histogram"
)

// Histogram holds per-value pixel counts for each channel of an image.
//
// Index v of a channel array is the number of pixels whose channel equals v.
// Intensity uses the rounded mean of the three channels.
type Histogram struct {
	Red       [256]int `json:"red"`
	Green     [256]int `json:"green"`
	Blue      [256]int `json:"blue"`
	Intensity [256]int `json:"intensity"`
}

// ChannelFrequencies counts red, green, blue and intensity values over every pixel.
func ChannelFrequencies(img *Image) *Histogram {
	rgba := histogram.NewRGBAHistogram(img.NRGBA())

	var h Histogram
	copy(h.Red[:], rgba.R.Bins)
	copy(h.Green[:], rgba.G.Bins)
	copy(h.Blue[:], rgba.B.Bins)
	for _, p := range img.pix {
		h.Intensity[p.Intensity()]++
	}
	return &h
}

// Max returns the largest count across all four channels, handy for scaling a plot.
func (h *Histogram) Max() int {
	m := 0
	for _, bins := range [][256]int{h.Red, h.Green, h.Blue, h.Intensity} {
		for _, n := range bins {
			m = max(m, n)
		}
	}
	return m
}
