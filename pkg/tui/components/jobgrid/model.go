// Package jobgrid renders the job card list on the home screen.
package jobgrid

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"baitonavi/pkg/catalog"
	"baitonavi/pkg/tui/events"
	"baitonavi/pkg/tui/theme"
)

// Card is one grid entry, keyed by its catalog index.
type Card struct {
	Index    int
	Title    string
	Time     string
	Place    string
	Price    string
	Color    string
	Urgent   bool
	Beginner bool
}

// Model scrolls a cursor over the cards and opens the one under it.
type Model struct {
	theme  theme.CardTheme
	cards  []Card
	cursor int
	width  int
	height int
}

// New builds the grid from the catalog, in catalog order.
func New(th theme.CardTheme, c *catalog.Catalog) Model {
	cards := make([]Card, 0, c.Len())
	for i, rec := range c.Records() {
		cards = append(cards, Card{
			Index:    i,
			Title:    rec.Title,
			Time:     rec.DisplayTime(),
			Place:    rec.Place,
			Price:    rec.Price,
			Color:    rec.Color,
			Urgent:   rec.Urgent,
			Beginner: rec.BeginnerOK,
		})
	}
	return Model{theme: th, cards: cards}
}

// SetSize updates the render bounds.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the catalog index under the cursor, or -1 on an empty grid.
func (m Model) Cursor() int {
	if len(m.cards) == 0 {
		return -1
	}
	return m.cards[m.cursor].Index
}

// Update moves the cursor and emits an open request on enter.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.cards) == 0 {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case "enter":
		return m, events.OpenDetailCmd(m.cards[m.cursor].Index)
	}
	return m, nil
}

// View renders the cards stacked vertically.
func (m Model) View() string {
	if len(m.cards) == 0 {
		return m.theme.Meta.Render("求人がありません")
	}
	parts := make([]string, 0, len(m.cards))
	for i, card := range m.cards {
		parts = append(parts, m.renderCard(card, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderCard(c Card, selected bool) string {
	title := c.Title
	if m.width > 8 {
		title = wordwrap.String(title, m.width-8)
	}

	badges := ""
	if c.Urgent {
		badges += m.theme.BadgeUrgent.Render("締切間近") + " "
	}
	if c.Beginner {
		badges += m.theme.BadgeBeginner.Render("未経験歓迎") + " "
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		badges+m.theme.Title.Render(title),
		m.theme.Meta.Render(c.Time+"  "+c.Place),
		theme.Swatch(c.Color).Render(" ")+" "+m.theme.Price.Render(c.Price),
	)

	frame := m.theme.Frame
	if selected {
		frame = m.theme.FrameSelected
	}
	if m.width > 4 {
		frame = frame.Width(m.width - 4)
	}
	return frame.Render(body)
}
