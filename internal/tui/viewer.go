// Package tui is an interactive viewer for stored observation runs.
package tui

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/synchro/internal/field"
	"github.com/san-kum/synchro/internal/storage"
	"github.com/san-kum/synchro/internal/viz"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

type namedMap struct {
	name string
	m    *field.Map
}

type model struct {
	runID string
	meta  storage.RunMetadata
	maps  []namedMap
	idx   int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.idx = (m.idx + 1) % len(m.maps)
		case "shift+tab", "left", "h":
			m.idx = (m.idx - 1 + len(m.maps)) % len(m.maps)
		}
	}
	return m, nil
}

func (m model) View() string {
	cur := m.maps[m.idx]
	header := headerStyle.Render(fmt.Sprintf("%s - %s (%d/%d)", m.runID, cur.name, m.idx+1, len(m.maps)))
	info := fmt.Sprintf("lambda=%g m  gamma=%g  beam=%g px", m.meta.Wavelength, m.meta.Gamma, m.meta.BeamSD)
	hint := hintStyle.Render("tab/arrows: next map - q: quit")
	return header + "\n" + info + "\n\n" + viz.Heatmap(cur.m) + "\n" + hint + "\n"
}

// View opens the interactive viewer for one stored run.
func View(store *storage.Store, runID string) error {
	meta, maps, err := store.Load(runID)
	if err != nil {
		return err
	}
	if len(maps) == 0 {
		return fmt.Errorf("run %s has no maps", runID)
	}

	named := make([]namedMap, 0, len(maps))
	for name, m := range maps {
		named = append(named, namedMap{name: name, m: m})
	}
	sort.Slice(named, func(i, j int) bool { return named[i].name < named[j].name })

	p := tea.NewProgram(model{runID: runID, meta: meta, maps: named})
	_, err = p.Run()
	return err
}
