package observables

import (
	"fmt"
	"math"

	"github.com/san-kum/synchro/internal/beam"
	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// StokesMaps bundles the three synchrotron intensity maps of a run.
type StokesMaps struct {
	I, Q, U *field.Map
}

// Stokes integrates emissivity and rotated polarization angle along the
// line of sight into Stokes I, Q and U maps:
//
//	I = integral em dz
//	Q = p0 * integral em*cos(2*psi) dz
//	U = p0 * integral em*sin(2*psi) dz
//
// with psi(z) = psi0(z) + lambda^2 * RMcum(z) and p0 the intrinsic
// polarization degree. All three integrals share one trapezoid rule over
// the actual (possibly non-uniform) depth spacing and are independent per
// spatial column, which is the parallel dimension.
//
// lambda = 0 is a valid sentinel meaning no Faraday rotation: the
// cumulative rotation stage is skipped entirely and psi stays psi0.
// A positive beamSD smooths each output map independently.
func Stokes(depth any, lambda units.Quantity, b *field.Vector3D, ne, ncr *field.Scalar3D, gamma float64, beamSD float64) (*StokesMaps, error) {
	axis, err := field.ResolveDepthAxis(depth)
	if err != nil {
		return nil, err
	}
	if err := field.CheckSameShape("ne", b.X, ne); err != nil {
		return nil, err
	}
	if err := field.CheckSameShape("ncr", b.X, ncr); err != nil {
		return nil, err
	}
	nx, ny, nz := b.Shape()
	if axis.Len() != nz {
		return nil, fmt.Errorf("%w: depth axis has %d samples, grid depth is %d",
			field.ErrShapeMismatch, axis.Len(), nz)
	}

	em, err := Emissivity(b, ncr, gamma, lambda)
	if err != nil {
		return nil, err
	}
	psi0, err := IntrinsicAngle(b.X, b.Y)
	if err != nil {
		return nil, err
	}

	lamM, err := lambda.In(units.Metre)
	if err != nil {
		return nil, err
	}

	// Cumulative rotation at every depth sample. Skipped for the zero
	// wavelength sentinel: no rotation, and no wasted integration.
	var rot []float64
	if lamM != 0 {
		rm, err := CumulativeFaradayDepth(axis, b.Z, ne)
		if err != nil {
			return nil, err
		}
		rot = rm.Values()
	}

	z, err := axis.ConvertedValues(units.Parsec)
	if err != nil {
		return nil, err
	}

	p0 := PolarizationDegree(gamma)
	lam2 := lamM * lamM
	emv := em.Values()
	psv := psi0.Values()

	mi := field.NewMap(nx, ny, units.Arb)
	mq := field.NewMap(nx, ny, units.Arb)
	mu := field.NewMap(nx, ny, units.Arb)
	di, dq, du := mi.Values(), mq.Values(), mu.Values()

	parallelRange(nx*ny, func(start, end int) {
		for c := start; c < end; c++ {
			off := c * nz

			psi := psv[off]
			if rot != nil {
				psi += lam2 * rot[off]
			}
			prevEm := emv[off]
			sin2, cos2 := math.Sincos(2 * psi)
			prevQ := prevEm * cos2
			prevU := prevEm * sin2

			var sumI, sumQ, sumU float64
			for k := 1; k < nz; k++ {
				psi = psv[off+k]
				if rot != nil {
					psi += lam2 * rot[off+k]
				}
				curEm := emv[off+k]
				sin2, cos2 = math.Sincos(2 * psi)
				curQ := curEm * cos2
				curU := curEm * sin2

				dz := z[k] - z[k-1]
				sumI += 0.5 * (prevEm + curEm) * dz
				sumQ += 0.5 * (prevQ + curQ) * dz
				sumU += 0.5 * (prevU + curU) * dz

				prevEm, prevQ, prevU = curEm, curQ, curU
			}

			di[c] = sumI
			dq[c] = p0 * sumQ
			du[c] = p0 * sumU
		}
	})

	return &StokesMaps{
		I: beamSmooth(mi, beamSD),
		Q: beamSmooth(mq, beamSD),
		U: beamSmooth(mu, beamSD),
	}, nil
}

// beamSmooth is the optional post-pass: identity for beamSD <= 0, applied
// to each map independently (cross-map correlations are not modeled).
func beamSmooth(m *field.Map, sd float64) *field.Map {
	return beam.Convolve(m, sd)
}
