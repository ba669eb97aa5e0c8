// Package navbar renders the fixed bottom navigation bar.
package navbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"baitonavi/pkg/screen"
	"baitonavi/pkg/tui/events"
	"baitonavi/pkg/tui/theme"
)

type tab struct {
	nav    screen.NavEntry
	screen screen.Screen
	label  string
	key    string
}

// The tab order mirrors the service's bottom bar.
var tabs = []tab{
	{screen.NavHome, screen.Home, "ホーム", "1"},
	{screen.NavFav, screen.Favorites, "お気に入り", "2"},
	{screen.NavWork, screen.Work, "しごと", "3"},
	{screen.NavMsg, screen.Messages, "メッセージ", "4"},
	{screen.NavMyPage, screen.MyPage, "マイページ", "5"},
}

// Model highlights at most one nav entry.
type Model struct {
	theme  theme.NavTheme
	active screen.NavEntry
	width  int
}

// New starts with the home tab highlighted.
func New(th theme.NavTheme) Model {
	return Model{theme: th, active: screen.NavHome}
}

// SetActive moves the single highlight. NavNone clears it.
func (m *Model) SetActive(nav screen.NavEntry) {
	m.active = nav
}

// Active returns the highlighted entry.
func (m Model) Active() screen.NavEntry { return m.active }

// SetWidth updates the render width.
func (m *Model) SetWidth(width int) { m.width = width }

// Update turns number keys into tab-switch requests.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	for _, t := range tabs {
		if key.String() == t.key {
			return m, events.SwitchTabCmd(t.screen)
		}
	}
	return m, nil
}

// View renders the bar with the active entry emphasized.
func (m Model) View() string {
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.key + " " + t.label
		if t.nav == m.active {
			parts = append(parts, m.theme.Active.Render("●"+label))
		} else {
			parts = append(parts, m.theme.Inactive.Render(" "+label))
		}
	}
	bar := strings.Join(parts, "  ")
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(bar)
	}
	return bar
}

// ScreenForKey resolves a number key to its tab screen.
func ScreenForKey(key string) (screen.Screen, bool) {
	for _, t := range tabs {
		if t.key == key {
			return t.screen, true
		}
	}
	return "", false
}
