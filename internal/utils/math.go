package utils

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
