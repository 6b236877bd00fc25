package observables

import (
	"math"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// Emissivity computes the per-voxel synchrotron emissivity
//
//	ncr * (Bx^2 + By^2)^((gamma+1)/4) * lambda^((gamma-1)/2)
//
// in the kernel's calibration units (B in uG, ncr in cm^-3, lambda in m);
// the result carries the arbitrary intensity unit. Where Bx = By = 0
// exactly, the perpendicular-field term is zero and so is the emissivity:
// Pow(0, p) is 0 for every positive exponent, so no special branch is
// needed and no NaN can arise.
func Emissivity(b *field.Vector3D, ncr *field.Scalar3D, gamma float64, lambda units.Quantity) (*field.Scalar3D, error) {
	if err := field.CheckSameShape("ncr", b.X, ncr); err != nil {
		return nil, err
	}
	bx, err := b.X.ConvertedValues(units.Microgauss)
	if err != nil {
		return nil, err
	}
	by, err := b.Y.ConvertedValues(units.Microgauss)
	if err != nil {
		return nil, err
	}
	n, err := ncr.ConvertedValues(units.PerCm3)
	if err != nil {
		return nil, err
	}
	lam, err := lambda.In(units.Metre)
	if err != nil {
		return nil, err
	}

	perpExp := (gamma + 1) / 4
	lamTerm := math.Pow(lam, (gamma-1)/2)

	nx, ny, nz := ncr.Shape()
	out := field.NewScalar3D(nx, ny, nz, units.Arb)
	dst := out.Values()
	parallelRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			bperp2 := bx[i]*bx[i] + by[i]*by[i]
			dst[i] = n[i] * math.Pow(bperp2, perpExp) * lamTerm
		}
	})
	return out, nil
}

// PolarizationDegree is the intrinsic polarization fraction implied by the
// cosmic-ray spectral index: (gamma+1)/(gamma+7/3).
func PolarizationDegree(gamma float64) float64 {
	return (gamma + 1) / (gamma + 7.0/3.0)
}
