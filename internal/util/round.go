package util

import "math"

// RoundTo rounds v to the given number of decimal places. Negative places
// round to tens, hundreds, and so on. Halfway values round away from zero.
func RoundTo(v float64, places int) float64 {
	if places >= 0 {
		scale := math.Pow(10, float64(places))
		return math.Round(v*scale) / scale
	}
	// Divide by the scale instead of multiplying by its inverse: integer
	// powers of ten are exact floats, so 123 at places=-1 yields 120 exactly.
	scale := math.Pow(10, float64(-places))
	return math.Round(v/scale) * scale
}
