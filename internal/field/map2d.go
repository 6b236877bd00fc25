package field

import (
	"fmt"

	"github.com/san-kum/synchro/internal/units"
)

// Map is a 2D sky map: the result of integrating a volumetric field along
// the depth axis. Its shape equals the first two grid dimensions.
type Map struct {
	data   []float64
	nx, ny int
	unit   units.Unit
}

func NewMap(nx, ny int, unit units.Unit) *Map {
	return &Map{data: make([]float64, nx*ny), nx: nx, ny: ny, unit: unit}
}

func NewMapFrom(data []float64, nx, ny int, unit units.Unit) (*Map, error) {
	if len(data) != nx*ny {
		return nil, fmt.Errorf("%w: %d values for %dx%d map", ErrShapeMismatch, len(data), nx, ny)
	}
	return &Map{data: data, nx: nx, ny: ny, unit: unit}, nil
}

func (m *Map) Shape() (nx, ny int) { return m.nx, m.ny }
func (m *Map) Unit() units.Unit    { return m.unit }

func (m *Map) At(i, j int) float64     { return m.data[i*m.ny+j] }
func (m *Map) Set(i, j int, v float64) { m.data[i*m.ny+j] = v }

// Values returns the raw backing slice. Read-only by convention.
func (m *Map) Values() []float64 { return m.data }

// ConvertedValues returns a copy of the values expressed in the target
// unit; the backing slice is returned directly when no scaling is needed.
func (m *Map) ConvertedValues(to units.Unit) ([]float64, error) {
	f, err := m.unit.Factor(to)
	if err != nil {
		return nil, err
	}
	if f == 1 {
		return m.data, nil
	}
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v * f
	}
	return out, nil
}

// Row returns row i as a view into the underlying storage.
func (m *Map) Row(i int) []float64 { return m.data[i*m.ny : (i+1)*m.ny] }

func (m *Map) SameShape(o *Map) bool { return m.nx == o.nx && m.ny == o.ny }

// Clone copies values and unit into a fresh map.
func (m *Map) Clone() *Map {
	c := NewMap(m.nx, m.ny, m.unit)
	copy(c.data, m.data)
	return c
}

// WithValues returns a new map with the same shape and unit but the given
// backing values. Used by stages that transform raw values without
// altering unit semantics.
func (m *Map) WithValues(data []float64) (*Map, error) {
	return NewMapFrom(data, m.nx, m.ny, m.unit)
}

// CheckSameShapeMap mirrors CheckSameShape for 2D maps.
func CheckSameShapeMap(name string, a, b *Map) error {
	if !a.SameShape(b) {
		return fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrShapeMismatch, name, b.nx, b.ny, a.nx, a.ny)
	}
	return nil
}
