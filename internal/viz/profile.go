package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/synchro/internal/field"
)

// RowProfile plots the values along one row of the map (a horizontal cut
// through the sky).
func RowProfile(m *field.Map, row int, height int) (string, error) {
	nx, _ := m.Shape()
	if row < 0 || row >= nx {
		return "", fmt.Errorf("row %d out of range [0, %d)", row, nx)
	}
	if height <= 0 {
		height = 10
	}
	plot := asciigraph.Plot(m.Row(row),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("row %d [%s]", row, m.Unit().Symbol())))
	return plot, nil
}
