package ui

import (
	"math"

	"github.com/zoltanbognar/sliders/internal/utils"
)

// Bounds is the closed [Lower, Upper] interval a slider value is
// constrained to. Lower must not exceed Upper; a degenerate interval
// (Lower == Upper) is valid and always maps to Lower.
type Bounds struct {
	Lower, Upper float64
}

// Clamp limits v to the interval.
func (b Bounds) Clamp(v float64) float64 {
	return utils.Clamp(v, b.Lower, b.Upper)
}

// Length returns Upper - Lower.
func (b Bounds) Length() float64 { return b.Upper - b.Lower }

// Insets reserve pixels at each end of the track so the thumb's center
// never overlaps the rail's end caps. Leading is the left edge for a
// horizontal slider, the top edge for a vertical one; inversion does
// not swap the insets.
type Insets struct {
	Leading, Trailing float64
}

// ValueForDistance maps a pixel offset along the track's main axis to a
// value in b. step > 0 snaps the result to multiples of step measured
// from b.Lower; step <= 0 disables snapping. inverted mirrors the axis
// (right-to-left, or bottom-to-top for vertical sliders). The result is
// inside b for any input, including offsets outside [0, span].
func ValueForDistance(distance, span float64, b Bounds, step float64, in Insets, inverted bool) float64 {
	usable := span - in.Leading - in.Trailing
	if usable <= 0 {
		return b.Lower
	}
	d := utils.Clamp(distance-in.Leading, 0, usable)
	if inverted {
		d = usable - d
	}
	v := b.Lower + d/usable*b.Length()
	if step > 0 {
		// rounding can overshoot Upper when step does not divide the
		// interval; the final clamp is authoritative
		v = b.Lower + math.Round((v-b.Lower)/step)*step
	}
	return b.Clamp(v)
}

// DistanceForValue is the inverse mapping: the pixel offset of the
// thumb's center for a given value. A zero usable span or a degenerate
// interval pins the thumb at the leading inset.
func DistanceForValue(value, span float64, b Bounds, in Insets, inverted bool) float64 {
	usable := span - in.Leading - in.Trailing
	if usable <= 0 {
		return in.Leading
	}
	f := 0.0
	if b.Length() > 0 {
		f = (b.Clamp(value) - b.Lower) / b.Length()
	}
	if inverted {
		f = 1 - f
	}
	return in.Leading + f*usable
}
