// Package datestrip renders the horizontally scrolling date picker.
package datestrip

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"baitonavi/pkg/dates"
	"baitonavi/pkg/selection"
	"baitonavi/pkg/tui/theme"
)

// Model holds the rolling date window and the single active cell.
type Model struct {
	theme theme.StripTheme
	cells []dates.Cell
	group *selection.Group
	width int
}

// New builds a strip starting today.
func New(th theme.StripTheme, now time.Time) Model {
	cells := dates.Strip(now, dates.WindowDays)
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.Label
	}
	return Model{
		theme: th,
		cells: cells,
		group: selection.NewGroup(labels, 0),
	}
}

// SetWidth limits how many cells render.
func (m *Model) SetWidth(width int) { m.width = width }

// Selected returns the active cell.
func (m Model) Selected() dates.Cell {
	return m.cells[m.group.Selected()]
}

// Update moves the highlight with the arrow keys. Moving past either end is
// ignored, matching radio semantics.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.group.Select(m.group.Selected() - 1)
	case "right", "l":
		m.group.Select(m.group.Selected() + 1)
	}
	return m, nil
}

// View renders a window of cells around the selection.
func (m Model) View() string {
	// Each cell renders about 7 columns wide.
	visible := len(m.cells)
	if m.width > 0 {
		if fit := m.width / 7; fit > 0 && fit < visible {
			visible = fit
		}
	}
	start := 0
	if sel := m.group.Selected(); sel >= visible {
		start = sel - visible + 1
	}
	end := start + visible
	if end > len(m.cells) {
		end = len(m.cells)
	}

	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := m.cells[i]
		cell := fmt.Sprintf("%s\n%d", c.Label, c.Day)
		if i == m.group.Selected() {
			parts = append(parts, m.theme.Active.Render(cell))
		} else {
			parts = append(parts, m.theme.Inactive.Render(cell))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Labels exposes the cell labels, first one being 今日.
func (m Model) Labels() []string {
	out := make([]string, len(m.cells))
	for i, c := range m.cells {
		out[i] = c.Label
	}
	return out
}

func (m Model) String() string {
	return strings.Join(m.Labels(), " ")
}
