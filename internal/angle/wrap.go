// Package angle provides branch-cut-safe angle arithmetic: wrapping into
// the canonical (-pi, pi] interval and smallest-magnitude resolution of
// pi-periodic differences.
package angle

import "math"

// Normalize wraps theta into (-pi, pi]. Closed-form modular reduction,
// correct for arbitrarily large |theta|; math.Mod is exact, so the result
// never drifts outside the interval.
func Normalize(theta float64) float64 {
	t := math.Mod(theta, 2*math.Pi)
	if t > math.Pi {
		t -= 2 * math.Pi
	} else if t <= -math.Pi {
		t += 2 * math.Pi
	}
	return t
}

// normalizeIterative is the while-loop reference formulation. Kept for
// boundary verification against Normalize; not a production path, since it
// accumulates one rounding per period for large inputs.
func normalizeIterative(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
