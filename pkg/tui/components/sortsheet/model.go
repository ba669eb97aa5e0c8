// Package sortsheet implements the sort picker: a bottom sheet plus a dimming
// overlay behind it. The two are shown and hidden strictly together.
package sortsheet

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"baitonavi/pkg/selection"
	"baitonavi/pkg/tui/events"
	"baitonavi/pkg/tui/theme"
)

// Options in display order. The first one is the default sort.
var Options = []string{"おすすめ順", "時給が高い順", "新着順", "締切が近い順"}

// Model drives the sheet/overlay pair and the radio group inside it.
type Model struct {
	theme   theme.SheetTheme
	group   *selection.Group
	cursor  int
	sheet   bool
	overlay bool
	width   int
}

// New builds a closed sheet with the default sort selected.
func New(th theme.SheetTheme) Model {
	return Model{theme: th, group: selection.NewGroup(Options, 0)}
}

// Open shows the sheet and its overlay and puts the cursor on the current
// selection.
func (m *Model) Open() {
	m.sheet = true
	m.overlay = true
	m.cursor = m.group.Selected()
}

// Dismiss hides both layers without changing the selection.
func (m *Model) Dismiss() {
	m.sheet = false
	m.overlay = false
}

// Visible reports whether the pair is on screen. The sheet never shows
// without its overlay or vice versa.
func (m Model) Visible() bool { return m.sheet && m.overlay }

// Value returns the committed sort label.
func (m Model) Value() string { return m.group.Value() }

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) { m.width = width }

// Update handles cursor movement, commit and dismiss while visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.Visible() {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.group.Len()-1 {
			m.cursor++
		}
	case "enter":
		m.group.Select(m.cursor)
		m.Dismiss()
		value := m.group.Value()
		return m, func() tea.Msg {
			return events.SortChosenMsg{Value: value}
		}
	case "esc":
		m.Dismiss()
	}
	return m, nil
}

// View renders the overlay scrim with the sheet docked at the bottom.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	rows := make([]string, 0, m.group.Len()+1)
	rows = append(rows, m.theme.Title.Render("並び替え"))
	for i, opt := range m.group.Options() {
		mark := "○ "
		style := m.theme.Option
		if i == m.group.Selected() {
			mark = "● "
		}
		if i == m.cursor {
			style = m.theme.OptionSelected
		}
		rows = append(rows, style.Render(mark+opt))
	}
	sheet := m.theme.Frame.Render(strings.Join(rows, "\n"))
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sheet)
	}
	return sheet
}
