// Package prefselect implements the location preference list screen.
package prefselect

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"baitonavi/pkg/selection"
	"baitonavi/pkg/tui/events"
	"baitonavi/pkg/tui/theme"
)

// Areas in display order.
var Areas = []string{"渋谷", "新宿", "池袋", "恵比寿", "目黒"}

// Model is a full-screen radio list over the areas.
type Model struct {
	theme  theme.SheetTheme
	group  *selection.Group
	cursor int
}

// New builds the list with initial preselected; unknown values fall back to
// the first area.
func New(th theme.SheetTheme, initial string) Model {
	m := Model{theme: th, group: selection.NewGroup(Areas, 0)}
	m.group.SelectValue(initial)
	m.cursor = m.group.Selected()
	return m
}

// Value returns the committed area.
func (m Model) Value() string { return m.group.Value() }

// Update moves the cursor; enter commits and announces the choice.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
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
		value := m.group.Value()
		return m, func() tea.Msg {
			return events.PrefChosenMsg{Value: value}
		}
	}
	return m, nil
}

// View renders the list with the committed area marked.
func (m Model) View() string {
	rows := make([]string, 0, m.group.Len()+1)
	rows = append(rows, m.theme.Title.Render("勤務地を選ぶ"))
	for i, area := range m.group.Options() {
		mark := "○ "
		style := m.theme.Option
		if i == m.group.Selected() {
			mark = "● "
		}
		if i == m.cursor {
			style = m.theme.OptionSelected
		}
		rows = append(rows, style.Render(mark+area))
	}
	return strings.Join(rows, "\n")
}
