package observables

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/synchro/internal/angle"
	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// ErrEqualWavelengths indicates a rotation-measure estimate requested from
// two identical wavelengths, which leaves RM undetermined.
var ErrEqualWavelengths = errors.New("observables: wavelengths must differ for RM estimation")

// Psi derives the observed polarization angle map from Stokes Q and U:
// atan2(U, Q)/2, wrapped into (-pi, pi].
func Psi(q, u *field.Map) (*field.Map, error) {
	if err := field.CheckSameShapeMap("U", q, u); err != nil {
		return nil, err
	}
	if !q.Unit().ConvertibleTo(u.Unit()) {
		return nil, fmt.Errorf("%w: Q in %q, U in %q", units.ErrUnitMismatch, q.Unit().Symbol(), u.Unit().Symbol())
	}
	// The ratio inside atan2 only cancels the unit once both operands are
	// on the same scale.
	uv, err := u.ConvertedValues(q.Unit())
	if err != nil {
		return nil, err
	}

	nx, ny := q.Shape()
	out := field.NewMap(nx, ny, units.Rad)
	qv, dst := q.Values(), out.Values()
	parallelRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = angle.Normalize(math.Atan2(uv[i], qv[i]) / 2)
		}
	})
	return out, nil
}

// RM estimates the rotation measure from polarization angle maps observed
// at two wavelengths: the angle difference, resolved to its
// smallest-magnitude representative modulo pi, divided by
// lambda2^2 - lambda1^2.
//
// The smallest-magnitude heuristic resolves the n*pi ambiguity only
// locally; for widely separated wavelength pairs the true rotation may
// differ by a multiple of pi. Known limitation, inherent to the
// measurement.
func RM(psi1, psi2 *field.Map, lambda1, lambda2 units.Quantity) (*field.Map, error) {
	if err := field.CheckSameShapeMap("Psi2", psi1, psi2); err != nil {
		return nil, err
	}
	p1, err := psi1.ConvertedValues(units.Rad)
	if err != nil {
		return nil, err
	}
	p2, err := psi2.ConvertedValues(units.Rad)
	if err != nil {
		return nil, err
	}
	l1, err := lambda1.In(units.Metre)
	if err != nil {
		return nil, err
	}
	l2, err := lambda2.In(units.Metre)
	if err != nil {
		return nil, err
	}
	denom := l2*l2 - l1*l1
	if denom == 0 {
		return nil, fmt.Errorf("%w: lambda1 = lambda2 = %g m", ErrEqualWavelengths, l1)
	}

	nx, ny := psi1.Shape()
	out := field.NewMap(nx, ny, units.RadPerM2)
	dst := out.Values()
	parallelRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = angle.SmallestDiff(p2[i]-p1[i]) / denom
		}
	})
	return out, nil
}
