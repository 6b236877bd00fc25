package field

import (
	"fmt"

	"github.com/san-kum/synchro/internal/units"
)

// DepthAxis holds the positions of the depth samples along the line of
// sight: strictly increasing, unit of length, supplied externally and
// never mutated.
type DepthAxis struct {
	pos  []float64
	unit units.Unit
}

// NewDepthAxis validates monotonicity eagerly.
func NewDepthAxis(pos []float64, unit units.Unit) (*DepthAxis, error) {
	for i := 1; i < len(pos); i++ {
		if pos[i] <= pos[i-1] {
			return nil, fmt.Errorf("%w: sample %d (%g) <= sample %d (%g)",
				ErrNonMonotonicDepth, i, pos[i], i-1, pos[i-1])
		}
	}
	return &DepthAxis{pos: pos, unit: unit}, nil
}

func (d *DepthAxis) Len() int          { return len(d.pos) }
func (d *DepthAxis) Unit() units.Unit  { return d.unit }
func (d *DepthAxis) Values() []float64 { return d.pos }

// Spacings returns the gaps between consecutive samples. Non-uniform
// spacing is allowed; monotonicity guarantees every gap is positive.
func (d *DepthAxis) Spacings() []float64 {
	out := make([]float64, len(d.pos)-1)
	for i := range out {
		out[i] = d.pos[i+1] - d.pos[i]
	}
	return out
}

// ConvertedValues returns the positions expressed in the target length
// unit. The backing slice is returned directly when no scaling is needed.
func (d *DepthAxis) ConvertedValues(to units.Unit) ([]float64, error) {
	f, err := d.unit.Factor(to)
	if err != nil {
		return nil, err
	}
	if f == 1 {
		return d.pos, nil
	}
	out := make([]float64, len(d.pos))
	for i, v := range d.pos {
		out[i] = v * f
	}
	return out, nil
}

// DepthProvider is the structural shape of a full grid object carrying a
// depth axis. Callers were once allowed to pass whole grids where a bare
// depth axis is expected; that calling convention is deprecated.
type DepthProvider interface {
	Depth() *DepthAxis
}

// DeprecationHandler receives non-fatal deprecation notices. The default
// is a no-op; the CLI installs a logger. Execution always proceeds after
// the notice.
var DeprecationHandler = func(msg string) {}

// ResolveDepthAxis normalizes the two accepted depth arguments: a
// *DepthAxis, or (deprecated) any grid value exposing one.
func ResolveDepthAxis(v any) (*DepthAxis, error) {
	switch d := v.(type) {
	case *DepthAxis:
		return d, nil
	case DepthProvider:
		DeprecationHandler("passing a full grid where a depth axis is expected is deprecated; pass grid.Depth() instead")
		return d.Depth(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrBadDepthSource, v)
	}
}
