package field

import (
	"fmt"

	"github.com/san-kum/synchro/internal/units"
)

// Scalar3D is a 3D grid of real values tagged with a physical unit.
//
// The line-of-sight (depth) axis is always the third index; data is laid
// out with k fastest-varying, so every line-of-sight column is a
// contiguous slice. Fields are treated as immutable once produced:
// producers fill them via Set, consumers only read.
type Scalar3D struct {
	data       []float64
	nx, ny, nz int
	unit       units.Unit
}

// NewScalar3D allocates a zero-filled field.
func NewScalar3D(nx, ny, nz int, unit units.Unit) *Scalar3D {
	return &Scalar3D{
		data: make([]float64, nx*ny*nz),
		nx:   nx, ny: ny, nz: nz,
		unit: unit,
	}
}

// NewScalar3DFrom wraps an existing value slice. The slice is owned by the
// field afterwards.
func NewScalar3DFrom(data []float64, nx, ny, nz int, unit units.Unit) (*Scalar3D, error) {
	if len(data) != nx*ny*nz {
		return nil, fmt.Errorf("%w: %d values for %dx%dx%d grid", ErrShapeMismatch, len(data), nx, ny, nz)
	}
	return &Scalar3D{data: data, nx: nx, ny: ny, nz: nz, unit: unit}, nil
}

func (s *Scalar3D) Shape() (nx, ny, nz int) { return s.nx, s.ny, s.nz }
func (s *Scalar3D) Unit() units.Unit        { return s.unit }
func (s *Scalar3D) Len() int                { return len(s.data) }

func (s *Scalar3D) index(i, j, k int) int { return (i*s.ny+j)*s.nz + k }

func (s *Scalar3D) At(i, j, k int) float64     { return s.data[s.index(i, j, k)] }
func (s *Scalar3D) Set(i, j, k int, v float64) { s.data[s.index(i, j, k)] = v }

// Column returns the line-of-sight column at spatial position (i, j) as a
// view into the underlying storage. Callers must not modify it.
func (s *Scalar3D) Column(i, j int) []float64 {
	off := (i*s.ny + j) * s.nz
	return s.data[off : off+s.nz]
}

// Values returns the raw backing slice in the field's declared unit.
// Read-only by convention.
func (s *Scalar3D) Values() []float64 { return s.data }

// ConvertedValues returns a copy of the values expressed in the target
// unit. If the declared unit already matches, the backing slice is
// returned directly (read-only).
func (s *Scalar3D) ConvertedValues(to units.Unit) ([]float64, error) {
	f, err := s.unit.Factor(to)
	if err != nil {
		return nil, err
	}
	if f == 1 {
		return s.data, nil
	}
	out := make([]float64, len(s.data))
	for i, v := range s.data {
		out[i] = v * f
	}
	return out, nil
}

// SameShape reports whether two fields share grid dimensions.
func (s *Scalar3D) SameShape(o *Scalar3D) bool {
	return s.nx == o.nx && s.ny == o.ny && s.nz == o.nz
}

// CheckSameShape returns an ErrShapeMismatch error naming both operands if
// the grids disagree.
func CheckSameShape(name string, a, b *Scalar3D) error {
	if !a.SameShape(b) {
		ax, ay, az := a.Shape()
		bx, by, bz := b.Shape()
		return fmt.Errorf("%w: %s is %dx%dx%d, want %dx%dx%d",
			ErrShapeMismatch, name, bx, by, bz, ax, ay, az)
	}
	return nil
}
