// Package model builds the volumetric inputs of the observable kernel:
// a uniform Cartesian grid and a small set of analytic magnetic-field and
// electron-density generators. Every generated field conforms to the
// kernel's axis convention (line of sight = third index).
package model

import (
	"fmt"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/units"
)

// Grid is a uniform Cartesian box. Its z axis is the line of sight.
type Grid struct {
	min, max   [3]float64
	nx, ny, nz int
	unit       units.Unit
	depth      *field.DepthAxis
}

// NewUniformGrid builds a grid spanning [min, max] per axis with the given
// resolution (at least 2 samples per axis, so spacings are defined).
func NewUniformGrid(min, max [3]float64, nx, ny, nz int, unit units.Unit) (*Grid, error) {
	for a := 0; a < 3; a++ {
		if min[a] >= max[a] {
			return nil, fmt.Errorf("grid axis %d: min %g >= max %g", a, min[a], max[a])
		}
	}
	if nx < 2 || ny < 2 || nz < 2 {
		return nil, fmt.Errorf("grid resolution %dx%dx%d: need at least 2 samples per axis", nx, ny, nz)
	}

	g := &Grid{min: min, max: max, nx: nx, ny: ny, nz: nz, unit: unit}
	depth, err := field.NewDepthAxis(axisValues(min[2], max[2], nz), unit)
	if err != nil {
		return nil, err
	}
	g.depth = depth
	return g, nil
}

func axisValues(lo, hi float64, n int) []float64 {
	v := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range v {
		v[i] = lo + float64(i)*step
	}
	v[n-1] = hi
	return v
}

func (g *Grid) Shape() (int, int, int) { return g.nx, g.ny, g.nz }
func (g *Grid) Unit() units.Unit       { return g.unit }

// Depth returns the line-of-sight axis. Grid satisfies the structural
// depth-provider shape accepted (with a deprecation notice) by the kernel.
func (g *Grid) Depth() *field.DepthAxis { return g.depth }

// X, Y, Z return the physical coordinate of a sample index on each axis.
func (g *Grid) X(i int) float64 { return g.min[0] + float64(i)*(g.max[0]-g.min[0])/float64(g.nx-1) }
func (g *Grid) Y(j int) float64 { return g.min[1] + float64(j)*(g.max[1]-g.min[1])/float64(g.ny-1) }
func (g *Grid) Z(k int) float64 { return g.depth.Values()[k] }
