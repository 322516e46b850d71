package gamemath

import "math"

// floorEpsilon absorbs float drift when a value that should sit exactly on a
// tile edge comes back a hair below it after add/subtract round trips.
const floorEpsilon = 1e-9

// FloorDiv returns floor(a/b) for a positive tile size b.
func FloorDiv(a, b float64) int {
	return int(math.Floor(a/b + floorEpsilon))
}

// FloorDivInt is integer floor division for b > 0.
func FloorDivInt(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Mod returns a mod b in [0, b) for b > 0.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// CeilMultiple rounds v up to the next multiple of step.
func CeilMultiple(v, step int) int {
	return FloorDivInt(v+step-1, step) * step
}
