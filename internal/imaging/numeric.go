package imaging

import "math"

// Clamp constrains an integer value to the range [min, max].
// Used for channel saturation and for edge replication in convolutions.
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampChannel saturates v into a channel value.
func ClampChannel(v int) uint8 {
	return uint8(Clamp(v, 0, 255))
}

// RoundHalfUp rounds to the nearest integer with .5 going up, so 2.5 -> 3.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// RoundChannel rounds v half-up and saturates it into a channel value.
func RoundChannel(v float64) uint8 {
	// Saturate before converting so huge sums cannot overflow int.
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return ClampChannel(RoundHalfUp(v))
}

// Intensity is the rounded mean of the three channels.
func (p Pixel) Intensity() uint8 {
	return uint8(RoundHalfUp(float64(int(p.R)+int(p.G)+int(p.B)) / 3.0))
}

// Value is the largest of the three channels.
func (p Pixel) Value() uint8 {
	return max(p.R, p.G, p.B)
}
