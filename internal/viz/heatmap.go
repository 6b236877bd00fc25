// Package viz renders sky maps in the terminal: ANSI heatmaps and
// line-profile plots.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/synchro/internal/field"
)

// Blue-through-red ramp, dark to bright.
var rampColors = []string{
	"#10104a", "#20207a", "#2f4fb0", "#3f8fd0",
	"#4fc0c0", "#70d080", "#b0d050", "#e0c040",
	"#f09030", "#f05020", "#e02020", "#ff6060",
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
)

// Heatmap renders the map as rows of colored cells, normalizing values to
// the map's own range. Degenerate maps (constant value) render in the
// lowest ramp color.
func Heatmap(m *field.Map) string {
	nx, ny := m.Shape()

	min, max := m.Values()[0], m.Values()[0]
	for _, v := range m.Values() {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	span := max - min

	styles := make([]lipgloss.Style, len(rampColors))
	for i, c := range rampColors {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	var b strings.Builder
	for j := ny - 1; j >= 0; j-- {
		for i := 0; i < nx; i++ {
			idx := 0
			if span > 0 {
				idx = int((m.At(i, j) - min) / span * float64(len(rampColors)-1))
			}
			b.WriteString(styles[idx].Render("██"))
		}
		b.WriteByte('\n')
	}

	unit := m.Unit().Symbol()
	if unit == "" {
		unit = "dimensionless"
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("min %.4g  max %.4g  [%s]", min, max, unit)))
	b.WriteByte('\n')
	return b.String()
}

// Titled wraps a rendered block with a heading.
func Titled(title, block string) string {
	return titleStyle.Render(title) + "\n" + block
}
