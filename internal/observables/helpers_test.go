package observables

import (
	"math"
	"testing"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// constantField fills a grid with a single value.
func constantField(t *testing.T, nx, ny, nz int, v float64, u units.Unit) *field.Scalar3D {
	t.Helper()
	s := field.NewScalar3D(nx, ny, nz, u)
	vals := s.Values()
	for i := range vals {
		vals[i] = v
	}
	return s
}

// wavyField fills a grid with a smooth deterministic pattern so the
// integrals have structure without randomness.
func wavyField(t *testing.T, nx, ny, nz int, amp float64, u units.Unit) *field.Scalar3D {
	t.Helper()
	s := field.NewScalar3D(nx, ny, nz, u)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				s.Set(i, j, k, amp*(1.2+math.Sin(0.7*float64(i)+0.3*float64(j))*math.Cos(0.5*float64(k))))
			}
		}
	}
	return s
}

func evenDepth(t *testing.T, n int, u units.Unit) *field.DepthAxis {
	t.Helper()
	z := make([]float64, n)
	for i := range z {
		z[i] = float64(i)
	}
	d, err := field.NewDepthAxis(z, u)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func vectorField(t *testing.T, x, y, z *field.Scalar3D) *field.Vector3D {
	t.Helper()
	v, err := field.NewVector3D(x, y, z)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
