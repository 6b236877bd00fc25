package angle

import "math"

// SmallestDiff returns the representative of diff, modulo pi, with the
// smallest magnitude: it shifts by +-pi while doing so strictly reduces
// |diff|. Polarization angles are pi-periodic, so an observed angle
// difference is only determined up to n*pi; this picks the local
// smallest-magnitude candidate and makes no attempt at global n*pi
// disambiguation.
//
// Ties keep the current representative (strict comparison): an input of
// exactly -pi/2 stays at -pi/2 rather than shifting to +pi/2.
func SmallestDiff(diff float64) float64 {
	for math.Abs(diff-math.Pi) < math.Abs(diff) {
		diff -= math.Pi
	}
	for math.Abs(diff+math.Pi) < math.Abs(diff) {
		diff += math.Pi
	}
	return diff
}
