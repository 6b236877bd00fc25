package units

import (
	"fmt"
	"math"
)

// Dim is an exponent vector over the base dimensions the kernel needs:
// metre, kilogram, second, ampere and radian. Two units are convertible
// iff their Dim values are equal.
type Dim struct {
	L, M, T, I, A int8
}

func (d Dim) add(o Dim) Dim {
	return Dim{d.L + o.L, d.M + o.M, d.T + o.T, d.I + o.I, d.A + o.A}
}

func (d Dim) sub(o Dim) Dim {
	return Dim{d.L - o.L, d.M - o.M, d.T - o.T, d.I - o.I, d.A - o.A}
}

func (d Dim) pow(n int8) Dim {
	return Dim{d.L * n, d.M * n, d.T * n, d.I * n, d.A * n}
}

// Unit is a physical unit: a dimension plus a scale factor relative to the
// coherent SI unit of that dimension.
type Unit struct {
	dim    Dim
	scale  float64
	symbol string
}

var (
	Dimensionless = Unit{Dim{}, 1, ""}

	Metre      = Unit{Dim{L: 1}, 1, "m"}
	Centimetre = Unit{Dim{L: 1}, 1e-2, "cm"}
	Parsec     = Unit{Dim{L: 1}, 3.0856775814913673e16, "pc"}

	// Magnetic flux density. 1 G = 1e-4 T.
	Gauss      = Unit{Dim{M: 1, T: -2, I: -1}, 1e-4, "G"}
	Microgauss = Unit{Dim{M: 1, T: -2, I: -1}, 1e-10, "uG"}

	// Number density.
	PerCm3 = Unit{Dim{L: -3}, 1e6, "cm^-3"}
	PerM3  = Unit{Dim{L: -3}, 1, "m^-3"}

	Rad      = Unit{Dim{A: 1}, 1, "rad"}
	RadPerM2 = Unit{Dim{L: -2, A: 1}, 1, "rad m^-2"}

	// Arbitrary intensity: the calibration of the synchrotron integrals is
	// not anchored to a radiometric scale.
	Arb = Unit{Dim{}, 1, "arb"}
)

func (u Unit) Symbol() string { return u.symbol }

// Mul returns the product unit.
func (u Unit) Mul(v Unit) Unit {
	return Unit{u.dim.add(v.dim), u.scale * v.scale, joinSymbols(u.symbol, v.symbol, "*")}
}

// Div returns the quotient unit.
func (u Unit) Div(v Unit) Unit {
	return Unit{u.dim.sub(v.dim), u.scale / v.scale, joinSymbols(u.symbol, v.symbol, "/")}
}

// Pow returns the unit raised to an integer power.
func (u Unit) Pow(n int) Unit {
	return Unit{u.dim.pow(int8(n)), math.Pow(u.scale, float64(n)), fmt.Sprintf("(%s)^%d", u.symbol, n)}
}

// ConvertibleTo reports whether values in u can be expressed in v.
func (u Unit) ConvertibleTo(v Unit) bool { return u.dim == v.dim }

// Factor returns the multiplier converting a value in u to a value in v.
func (u Unit) Factor(v Unit) (float64, error) {
	if !u.ConvertibleTo(v) {
		return 0, fmt.Errorf("%w: cannot convert %q to %q", ErrUnitMismatch, u.symbol, v.symbol)
	}
	return u.scale / v.scale, nil
}

func joinSymbols(a, b, op string) string {
	switch {
	case a == "":
		if op == "/" && b != "" {
			return "1/" + b
		}
		return b
	case b == "":
		return a
	default:
		return a + op + b
	}
}

// Quantity is a scalar tagged with a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

func Q(v float64, u Unit) Quantity { return Quantity{Value: v, Unit: u} }

// Convert expresses the quantity in the target unit.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	f, err := q.Unit.Factor(to)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value * f, Unit: to}, nil
}

// In is Convert returning only the numeric value.
func (q Quantity) In(to Unit) (float64, error) {
	c, err := q.Convert(to)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}

func (q Quantity) String() string {
	if q.Unit.symbol == "" {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit.symbol)
}
