package observables

import (
	"fmt"
	"math"

	"github.com/san-kum/synchro/internal/angle"
	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// IntrinsicAngle computes the un-rotated polarization angle per voxel,
//
//	psi0 = atan(By/Bx) + pi/2
//
// wrapped into (-pi, pi]. Voxels where Bx and By are both exactly zero are
// interpolation artifacts, not a physical state: psi0 is forced to 0 there
// instead of propagating the 0/0 NaN.
func IntrinsicAngle(bx, by *field.Scalar3D) (*field.Scalar3D, error) {
	if err := field.CheckSameShape("By", bx, by); err != nil {
		return nil, err
	}
	if !bx.Unit().ConvertibleTo(by.Unit()) {
		return nil, fmt.Errorf("%w: Bx in %q, By in %q", units.ErrUnitMismatch, bx.Unit().Symbol(), by.Unit().Symbol())
	}
	// atan of the component ratio; any common field unit cancels, but both
	// operands must be on the same scale before the ratio is formed.
	x, err := bx.ConvertedValues(units.Microgauss)
	if err != nil {
		return nil, err
	}
	y, err := by.ConvertedValues(units.Microgauss)
	if err != nil {
		return nil, err
	}

	nx, ny, nz := bx.Shape()
	out := field.NewScalar3D(nx, ny, nz, units.Rad)
	dst := out.Values()
	parallelRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if x[i] == 0 && y[i] == 0 {
				dst[i] = 0
				continue
			}
			dst[i] = angle.Normalize(math.Atan(y[i]/x[i]) + math.Pi/2)
		}
	})
	return out, nil
}
