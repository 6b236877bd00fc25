package model

import (
	"math"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// UniformField is a constant magnetic field of strength B (uG) oriented by
// two pitch angles: Beta tilts the field out of the sky plane (towards the
// line of sight), Gamma rotates it within the sky plane.
type UniformField struct {
	B     float64 // uG
	Beta  float64 // rad
	Gamma float64 // rad
}

func (u *UniformField) Generate(g *Grid) (*field.Vector3D, error) {
	nx, ny, nz := g.Shape()
	bx := field.NewScalar3D(nx, ny, nz, units.Microgauss)
	by := field.NewScalar3D(nx, ny, nz, units.Microgauss)
	bz := field.NewScalar3D(nx, ny, nz, units.Microgauss)

	cx := u.B * math.Cos(u.Beta) * math.Cos(u.Gamma)
	cy := u.B * math.Cos(u.Beta) * math.Sin(u.Gamma)
	cz := u.B * math.Sin(u.Beta)
	fill(bx.Values(), cx)
	fill(by.Values(), cy)
	fill(bz.Values(), cz)

	return field.NewVector3D(bx, by, bz)
}

func (u *UniformField) GetParams() map[string]float64 {
	return map[string]float64{"B": u.B, "beta": u.Beta, "gamma": u.Gamma}
}

func (u *UniformField) SetParam(name string, v float64) error {
	switch name {
	case "B":
		u.B = v
	case "beta":
		u.Beta = v
	case "gamma":
		u.Gamma = v
	}
	return nil
}

// HelicalField winds a field of constant magnitude B around the line of
// sight: the transverse components rotate with depth over a spatial
// Period, phase-shifted by Alpha, while Beta pitches the helix towards the
// line of sight. Beta=0 keeps the field fully in the sky plane.
type HelicalField struct {
	B      float64 // uG
	Alpha  float64 // rad, phase at z=0
	Beta   float64 // rad, pitch towards the line of sight
	Period float64 // same length unit as the grid
}

func (h *HelicalField) Generate(g *Grid) (*field.Vector3D, error) {
	nx, ny, nz := g.Shape()
	bx := field.NewScalar3D(nx, ny, nz, units.Microgauss)
	by := field.NewScalar3D(nx, ny, nz, units.Microgauss)
	bz := field.NewScalar3D(nx, ny, nz, units.Microgauss)

	bt := h.B * math.Cos(h.Beta)
	bl := h.B * math.Sin(h.Beta)
	for k := 0; k < nz; k++ {
		phase := h.Alpha + 2*math.Pi*g.Z(k)/h.Period
		sin, cos := math.Sincos(phase)
		vx, vy := bt*cos, bt*sin
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				bx.Set(i, j, k, vx)
				by.Set(i, j, k, vy)
				bz.Set(i, j, k, bl)
			}
		}
	}

	return field.NewVector3D(bx, by, bz)
}

func (h *HelicalField) GetParams() map[string]float64 {
	return map[string]float64{"B": h.B, "alpha": h.Alpha, "beta": h.Beta, "period": h.Period}
}

func (h *HelicalField) SetParam(name string, v float64) error {
	switch name {
	case "B":
		h.B = v
	case "alpha":
		h.Alpha = v
	case "beta":
		h.Beta = v
	case "period":
		h.Period = v
	}
	return nil
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
