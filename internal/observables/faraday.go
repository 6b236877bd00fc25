package observables

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// faradayK0 converts the line integral of Bz * ne over depth into a
// rotation measure: 0.812 rad m^-2 per (uG cm^-3 pc). The integrand must
// be formed in exactly those calibration units.
var faradayK0 = units.Q(0.812, units.RadPerM2.Div(units.Microgauss).Div(units.PerCm3).Div(units.Parsec))

// faradayInputs normalizes and validates the shared inputs of the two
// Faraday integrals: depth in pc, Bz in uG, ne in cm^-3.
func faradayInputs(depth any, bz, ne *field.Scalar3D) (z, bzv, nev []float64, err error) {
	axis, err := field.ResolveDepthAxis(depth)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := field.CheckSameShape("ne", bz, ne); err != nil {
		return nil, nil, nil, err
	}
	_, _, nz := bz.Shape()
	if axis.Len() != nz {
		return nil, nil, nil, fmt.Errorf("%w: depth axis has %d samples, grid depth is %d",
			field.ErrShapeMismatch, axis.Len(), nz)
	}
	if z, err = axis.ConvertedValues(units.Parsec); err != nil {
		return nil, nil, nil, err
	}
	if bzv, err = bz.ConvertedValues(units.Microgauss); err != nil {
		return nil, nil, nil, err
	}
	if nev, err = ne.ConvertedValues(units.PerCm3); err != nil {
		return nil, nil, nil, err
	}
	return z, bzv, nev, nil
}

// CumulativeFaradayDepth returns the rotation measure accumulated up to
// every depth sample: k0 * prefix-trapezoid of Bz*ne along the line of
// sight, exactly 0 at the first sample. The prefix sum is sequential in
// depth within a column; columns are independent and run in parallel.
func CumulativeFaradayDepth(depth any, bz, ne *field.Scalar3D) (*field.Scalar3D, error) {
	z, bzv, nev, err := faradayInputs(depth, bz, ne)
	if err != nil {
		return nil, err
	}

	nx, ny, nz := bz.Shape()
	out := field.NewScalar3D(nx, ny, nz, units.RadPerM2)
	dst := out.Values()
	k0 := faradayK0.Value

	parallelRange(nx*ny, func(start, end int) {
		for c := start; c < end; c++ {
			off := c * nz
			cum := dst[off : off+nz]
			cum[0] = 0
			prev := bzv[off] * nev[off]
			acc := 0.0
			for k := 1; k < nz; k++ {
				cur := bzv[off+k] * nev[off+k]
				acc += 0.5 * (prev + cur) * (z[k] - z[k-1])
				cum[k] = k0 * acc
				prev = cur
			}
		}
	})
	return out, nil
}

// FaradayDepth returns the total rotation measure per spatial column: the
// full-range definite integral of Bz*ne, times k0. A positive beamSD
// applies Gaussian beam smoothing to the result.
func FaradayDepth(depth any, bz, ne *field.Scalar3D, beamSD float64) (*field.Map, error) {
	z, bzv, nev, err := faradayInputs(depth, bz, ne)
	if err != nil {
		return nil, err
	}

	nx, ny, nz := bz.Shape()
	out := field.NewMap(nx, ny, units.RadPerM2)
	// A single depth sample spans no distance: the definite integral is
	// zero, and the quadrature rule needs at least two points.
	if nz < 2 {
		return beamSmooth(out, beamSD), nil
	}
	dst := out.Values()
	k0 := faradayK0.Value

	parallelRange(nx*ny, func(start, end int) {
		f := make([]float64, nz)
		for c := start; c < end; c++ {
			off := c * nz
			for k := 0; k < nz; k++ {
				f[k] = bzv[off+k] * nev[off+k]
			}
			dst[c] = k0 * integrate.Trapezoidal(z, f)
		}
	})
	return beamSmooth(out, beamSD), nil
}
