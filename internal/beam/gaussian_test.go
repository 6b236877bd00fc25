package beam

import (
	"math"
	"testing"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

func gradientMap(nx, ny int) *field.Map {
	m := field.NewMap(nx, ny, units.Arb)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			m.Set(i, j, float64(i*i)+0.5*float64(j)+math.Sin(float64(i*j)))
		}
	}
	return m
}

func TestConvolveIdentityForZeroSD(t *testing.T) {
	m := gradientMap(8, 8)
	if got := Convolve(m, 0); got != m {
		t.Error("sd=0 should be a pass-through")
	}
	if got := Convolve(m, -1); got != m {
		t.Error("negative sd should be a pass-through")
	}
}

func TestConvolveLinearity(t *testing.T) {
	m := gradientMap(12, 10)
	const a = 3.7

	scaled := m.Clone()
	for i, v := range m.Values() {
		scaled.Values()[i] = a * v
	}

	c1 := Convolve(scaled, 1.5)
	c2 := Convolve(m, 1.5)
	for i := range c1.Values() {
		if math.Abs(c1.Values()[i]-a*c2.Values()[i]) > 1e-9 {
			t.Fatalf("convolve(a*X) != a*convolve(X) at %d: %g vs %g", i, c1.Values()[i], a*c2.Values()[i])
		}
	}
}

func TestConvolvePreservesConstantMaps(t *testing.T) {
	m := field.NewMap(9, 7, units.RadPerM2)
	for i := range m.Values() {
		m.Values()[i] = 4.2
	}
	c := Convolve(m, 2.0)
	for i, v := range c.Values() {
		if math.Abs(v-4.2) > 1e-12 {
			t.Fatalf("constant map changed at %d: %g", i, v)
		}
	}
}

func TestConvolvePreservesUnitAndMass(t *testing.T) {
	m := field.NewMap(16, 16, units.RadPerM2)
	m.Set(8, 8, 1) // point source

	c := Convolve(m, 1.0)
	if c.Unit() != m.Unit() {
		t.Error("unit must survive convolution")
	}

	// The kernel is normalized and the source is far from any edge, so the
	// total is conserved.
	sum := 0.0
	for _, v := range c.Values() {
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("expected total 1, got %g", sum)
	}

	// Isotropy around the source.
	if math.Abs(c.At(8, 9)-c.At(9, 8)) > 1e-12 {
		t.Error("expected isotropic kernel")
	}
	if c.At(8, 8) <= c.At(8, 9) {
		t.Error("peak should stay at the source")
	}
}

func TestReflectIndex(t *testing.T) {
	n := 4
	cases := map[int]int{-2: 1, -1: 0, 0: 0, 3: 3, 4: 3, 5: 2}
	for in, want := range cases {
		if got := reflect(in, n); got != want {
			t.Errorf("reflect(%d, %d) = %d, want %d", in, n, got, want)
		}
	}
}
