package observables

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

func TestCumulativeStartsAtZero(t *testing.T) {
	const nx, ny, nz = 3, 2, 8
	bz := wavyField(t, nx, ny, nz, 3, units.Microgauss)
	ne := wavyField(t, nx, ny, nz, 0.1, units.PerCm3)
	depth := evenDepth(t, nz, units.Parsec)

	cum, err := CumulativeFaradayDepth(depth, bz, ne)
	require.NoError(t, err)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			require.Zero(t, cum.At(i, j, 0), "first sample must be exactly zero")
		}
	}
	require.Equal(t, units.RadPerM2.Symbol(), cum.Unit().Symbol())
}

// The last cumulative sample must equal the total definite integral over
// the same range.
func TestCumulativeMatchesTotal(t *testing.T) {
	const nx, ny, nz = 4, 3, 21
	bz := wavyField(t, nx, ny, nz, 3, units.Microgauss)
	ne := wavyField(t, nx, ny, nz, 0.1, units.PerCm3)

	// Non-uniform spacing exercises the shared quadrature rule.
	z := make([]float64, nz)
	for i := range z {
		z[i] = 0.5*float64(i) + 0.05*float64(i*i)
	}
	depth, err := field.NewDepthAxis(z, units.Parsec)
	require.NoError(t, err)

	cum, err := CumulativeFaradayDepth(depth, bz, ne)
	require.NoError(t, err)
	total, err := FaradayDepth(depth, bz, ne, 0)
	require.NoError(t, err)

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			last := cum.At(i, j, nz-1)
			want := total.At(i, j)
			require.InEpsilon(t, want, last, 1e-9, "column (%d,%d)", i, j)
		}
	}
}

// The integrand is formed in calibration units, so declaring the same
// physical inputs in different units must not change the result.
func TestFaradayDepthUnitInvariance(t *testing.T) {
	const nx, ny, nz = 2, 2, 10
	bzMicro := constantField(t, nx, ny, nz, 2e6, units.Microgauss)
	bzGauss := constantField(t, nx, ny, nz, 2, units.Gauss)
	ne := constantField(t, nx, ny, nz, 0.03, units.PerCm3)
	depth := evenDepth(t, nz, units.Parsec)

	a, err := FaradayDepth(depth, bzMicro, ne, 0)
	require.NoError(t, err)
	b, err := FaradayDepth(depth, bzGauss, ne, 0)
	require.NoError(t, err)
	require.InEpsilon(t, a.At(0, 0), b.At(0, 0), 1e-12)

	// Closed form: 0.812 * Bz[uG] * ne[cm^-3] * depth[pc]
	want := 0.812 * 2e6 * 0.03 * 9
	require.InEpsilon(t, want, a.At(1, 1), 1e-12)
}

// One depth sample spans no distance, so the definite integral is zero
// rather than a quadrature failure.
func TestFaradayDepthSingleSample(t *testing.T) {
	const nx, ny, nz = 2, 2, 1
	bz := constantField(t, nx, ny, nz, 3, units.Microgauss)
	ne := constantField(t, nx, ny, nz, 0.1, units.PerCm3)
	depth := evenDepth(t, nz, units.Parsec)

	fd, err := FaradayDepth(depth, bz, ne, 0)
	require.NoError(t, err)
	for i, v := range fd.Values() {
		require.Zero(t, v, "pixel %d", i)
	}
	require.Equal(t, units.RadPerM2.Symbol(), fd.Unit().Symbol())

	cum, err := CumulativeFaradayDepth(depth, bz, ne)
	require.NoError(t, err)
	require.Zero(t, cum.At(0, 0, 0))
}

func TestFaradayDepthRejectsWrongUnits(t *testing.T) {
	const nx, ny, nz = 2, 2, 4
	bz := constantField(t, nx, ny, nz, 1, units.PerCm3) // density is not a field strength
	ne := constantField(t, nx, ny, nz, 1, units.PerCm3)
	depth := evenDepth(t, nz, units.Parsec)

	_, err := FaradayDepth(depth, bz, ne, 0)
	require.ErrorIs(t, err, units.ErrUnitMismatch)

	badDepth := evenDepth(t, nz, units.Microgauss)
	good := constantField(t, nx, ny, nz, 1, units.Microgauss)
	_, err = FaradayDepth(badDepth, good, ne, 0)
	require.ErrorIs(t, err, units.ErrUnitMismatch)
}

func TestFaradayDepthBeamOption(t *testing.T) {
	const nx, ny, nz = 8, 8, 5
	bz := wavyField(t, nx, ny, nz, 3, units.Microgauss)
	ne := constantField(t, nx, ny, nz, 0.1, units.PerCm3)
	depth := evenDepth(t, nz, units.Parsec)

	sharp, err := FaradayDepth(depth, bz, ne, 0)
	require.NoError(t, err)
	smooth, err := FaradayDepth(depth, bz, ne, 1.0)
	require.NoError(t, err)

	require.Equal(t, sharp.Unit(), smooth.Unit())
	require.Less(t, spread(smooth.Values()), spread(sharp.Values()))
	require.False(t, math.IsNaN(smooth.At(0, 0)))
}
