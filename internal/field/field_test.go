package field

import (
	"errors"
	"testing"

	"github.com/san-kum/synchro/internal/units"
)

func TestScalar3DColumnContiguity(t *testing.T) {
	s := NewScalar3D(2, 3, 4, units.Microgauss)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				s.Set(i, j, k, float64(100*i+10*j+k))
			}
		}
	}

	col := s.Column(1, 2)
	if len(col) != 4 {
		t.Fatalf("expected column length 4, got %d", len(col))
	}
	for k := 0; k < 4; k++ {
		if col[k] != float64(100+20+k) {
			t.Errorf("column[%d] = %g, want %g", k, col[k], float64(120+k))
		}
	}
}

func TestNewScalar3DFromShapeError(t *testing.T) {
	_, err := NewScalar3DFrom(make([]float64, 7), 2, 2, 2, units.PerCm3)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestVectorComponentValidation(t *testing.T) {
	x := NewScalar3D(2, 2, 2, units.Microgauss)
	y := NewScalar3D(2, 2, 2, units.Microgauss)
	bad := NewScalar3D(2, 2, 3, units.Microgauss)

	if _, err := NewVector3D(x, y, bad); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected shape error, got %v", err)
	}

	wrongUnit := NewScalar3D(2, 2, 2, units.PerCm3)
	if _, err := NewVector3D(x, y, wrongUnit); !errors.Is(err, units.ErrUnitMismatch) {
		t.Errorf("expected unit error, got %v", err)
	}

	if _, err := NewVector3D(x, y, NewScalar3D(2, 2, 2, units.Gauss)); err != nil {
		t.Errorf("convertible component units should be accepted: %v", err)
	}
}

func TestDepthAxisMonotonic(t *testing.T) {
	if _, err := NewDepthAxis([]float64{0, 1, 1}, units.Parsec); !errors.Is(err, ErrNonMonotonicDepth) {
		t.Errorf("expected ErrNonMonotonicDepth, got %v", err)
	}
	if _, err := NewDepthAxis([]float64{0, 2, 1}, units.Parsec); !errors.Is(err, ErrNonMonotonicDepth) {
		t.Errorf("expected ErrNonMonotonicDepth, got %v", err)
	}
	if _, err := NewDepthAxis([]float64{0, 0.5, 2}, units.Parsec); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDepthAxisSpacings(t *testing.T) {
	z, err := NewDepthAxis([]float64{0, 0.5, 2, 2.25}, units.Parsec)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 1.5, 0.25}
	got := z.Spacings()
	if len(got) != len(want) {
		t.Fatalf("expected %d spacings, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("spacing[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

type fakeGrid struct{ z *DepthAxis }

func (g fakeGrid) Depth() *DepthAxis { return g.z }

func TestResolveDepthAxis(t *testing.T) {
	z, err := NewDepthAxis([]float64{0, 1, 2}, units.Parsec)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ResolveDepthAxis(z)
	if err != nil || got != z {
		t.Fatalf("direct axis should pass through, got %v, %v", got, err)
	}

	var notices []string
	old := DeprecationHandler
	DeprecationHandler = func(msg string) { notices = append(notices, msg) }
	defer func() { DeprecationHandler = old }()

	got, err = ResolveDepthAxis(fakeGrid{z: z})
	if err != nil || got != z {
		t.Fatalf("grid should be unwrapped, got %v, %v", got, err)
	}
	if len(notices) != 1 {
		t.Errorf("expected one deprecation notice, got %d", len(notices))
	}

	if _, err := ResolveDepthAxis(42); !errors.Is(err, ErrBadDepthSource) {
		t.Errorf("expected ErrBadDepthSource, got %v", err)
	}
}

func TestConvertedValues(t *testing.T) {
	s := NewScalar3D(1, 1, 2, units.Gauss)
	s.Set(0, 0, 0, 1)
	s.Set(0, 0, 1, 2)

	v, err := s.ConvertedValues(units.Microgauss)
	if err != nil {
		t.Fatal(err)
	}
	if v[0] != 1e6 || v[1] != 2e6 {
		t.Errorf("expected [1e6 2e6], got %v", v)
	}

	if _, err := s.ConvertedValues(units.Parsec); !errors.Is(err, units.ErrUnitMismatch) {
		t.Errorf("expected unit mismatch, got %v", err)
	}
}

func TestMapRowAndClone(t *testing.T) {
	m := NewMap(2, 3, units.Arb)
	m.Set(1, 2, 5)

	if m.Row(1)[2] != 5 {
		t.Error("row view should expose set value")
	}

	c := m.Clone()
	c.Set(1, 2, 9)
	if m.At(1, 2) != 5 {
		t.Error("clone should not alias original")
	}
}
