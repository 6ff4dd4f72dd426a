package utils

import "math"

// Extrapolate continues the line through interior and edge one step past
// edge.
func Extrapolate(edge, interior float64) float64 {
	return 2.*edge - interior
}

// RelDiff is |a-b| scaled by the larger magnitude, or |a-b| when both are
// below NODETOL.
func RelDiff(a, b float64) float64 {
	var (
		d     = math.Abs(a - b)
		scale = math.Max(math.Abs(a), math.Abs(b))
	)
	if scale < NODETOL {
		return d
	}
	return d / scale
}
