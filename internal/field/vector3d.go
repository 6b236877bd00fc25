package field

import (
	"fmt"

	"github.com/san-kum/synchro/internal/units"
)

// Vector3D is three co-located scalar fields holding the x, y and z
// components of a vector quantity. All three share shape and unit.
type Vector3D struct {
	X, Y, Z *Scalar3D
}

// NewVector3D validates that the components are co-located and share a
// convertible unit.
func NewVector3D(x, y, z *Scalar3D) (*Vector3D, error) {
	if err := CheckSameShape("y component", x, y); err != nil {
		return nil, err
	}
	if err := CheckSameShape("z component", x, z); err != nil {
		return nil, err
	}
	if !x.Unit().ConvertibleTo(y.Unit()) || !x.Unit().ConvertibleTo(z.Unit()) {
		return nil, fmt.Errorf("%w: vector components carry different units", units.ErrUnitMismatch)
	}
	return &Vector3D{X: x, Y: y, Z: z}, nil
}

func (v *Vector3D) Shape() (int, int, int) { return v.X.Shape() }
func (v *Vector3D) Unit() units.Unit       { return v.X.Unit() }
