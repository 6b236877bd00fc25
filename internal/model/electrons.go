package model

import (
	"math"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// ConstantDensity fills the grid with a uniform electron density (cm^-3).
type ConstantDensity struct {
	N float64 // cm^-3
}

func (c *ConstantDensity) Generate(g *Grid) *field.Scalar3D {
	nx, ny, nz := g.Shape()
	s := field.NewScalar3D(nx, ny, nz, units.PerCm3)
	fill(s.Values(), c.N)
	return s
}

// ShellDensity is a supernova-remnant-like electron distribution: ambient
// density N0 with a swept-up shell of compressed gas at Radius,
//
//	n(r) = N0 * (1 + Compression * exp(-((r - Radius)/w)^2))
//
// where the shell width is w = Radius / Sharpness. The shell is centred on
// the grid origin.
type ShellDensity struct {
	N0          float64 // cm^-3, ambient
	Radius      float64 // grid length unit
	Compression float64 // peak overdensity factor at the shell
	Sharpness   float64 // radius-to-width ratio of the shell
}

func (s *ShellDensity) Generate(g *Grid) *field.Scalar3D {
	nx, ny, nz := g.Shape()
	out := field.NewScalar3D(nx, ny, nz, units.PerCm3)

	w := s.Radius / s.Sharpness
	for i := 0; i < nx; i++ {
		x := g.X(i)
		for j := 0; j < ny; j++ {
			y := g.Y(j)
			for k := 0; k < nz; k++ {
				z := g.Z(k)
				r := math.Sqrt(x*x + y*y + z*z)
				d := (r - s.Radius) / w
				out.Set(i, j, k, s.N0*(1+s.Compression*math.Exp(-d*d)))
			}
		}
	}
	return out
}

func (s *ShellDensity) GetParams() map[string]float64 {
	return map[string]float64{
		"n0": s.N0, "radius": s.Radius,
		"compression": s.Compression, "sharpness": s.Sharpness,
	}
}

func (s *ShellDensity) SetParam(name string, v float64) error {
	switch name {
	case "n0":
		s.N0 = v
	case "radius":
		s.Radius = v
	case "compression":
		s.Compression = v
	case "sharpness":
		s.Sharpness = v
	}
	return nil
}
