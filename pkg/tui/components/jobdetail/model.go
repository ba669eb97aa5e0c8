// Package jobdetail renders a fully assembled detail view model.
package jobdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"baitonavi/pkg/catalog"
	"baitonavi/pkg/detail"
	"baitonavi/pkg/tui/events"
	"baitonavi/pkg/tui/theme"
)

// Model displays one detail view model at a time inside a scrolling
// viewport. It owns no catalog access; the root model assembles and hands
// over the resolved content.
type Model struct {
	theme    theme.DetailTheme
	cards    theme.CardTheme
	vm       *detail.ViewModel
	viewport viewport.Model
	width    int
	height   int
}

// New builds an empty detail pane.
func New(th theme.DetailTheme, cards theme.CardTheme) Model {
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return Model{theme: th, cards: cards, viewport: vp}
}

// SetSize resizes the viewport and reflows the content.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.SetWidth(max(1, width))
	m.viewport.SetHeight(max(1, height))
	m.refreshContent()
}

// Show replaces the displayed content and scrolls back to the top.
func (m *Model) Show(vm *detail.ViewModel) {
	m.vm = vm
	m.refreshContent()
	m.viewport.SetYOffset(0)
}

// Showing returns the catalog index on display, or -1 when empty.
func (m Model) Showing() int {
	if m.vm == nil {
		return -1
	}
	return m.vm.Index
}

// Update opens similar jobs on their number keys and lets the viewport
// handle scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.vm == nil {
		return m, nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "1", "2", "3":
			i := int(key.String()[0] - '1')
			if i < len(m.vm.Similar) {
				return m, events.OpenDetailCmd(m.vm.Similar[i].Index)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the scrolled detail content.
func (m Model) View() string {
	if m.vm == nil {
		return m.theme.Faint.Render(detail.FallbackDescription)
	}
	return m.viewport.View()
}

func (m *Model) refreshContent() {
	if m.vm == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.render())
}

func (m Model) render() string {
	vm := m.vm
	var b strings.Builder

	title := vm.Title
	if vm.Urgent {
		title = "【締切間近】" + title
	}
	b.WriteString(m.theme.Title.Render(title) + "\n")
	b.WriteString(theme.Swatch(vm.Color).Render(" ") + " " + m.theme.Price.Render(vm.Price) + "  " + vm.DisplayTime + "\n\n")

	b.WriteString(m.section("仕事内容", m.wrap(vm.Description)))
	b.WriteString(m.section("持ち物", m.list(vm.Items)))
	b.WriteString(m.section("条件", m.list(vm.Conditions)))
	b.WriteString(m.section("備考", m.wrap(vm.Notes)))
	b.WriteString(m.section("勤務地", vm.Address+"\n"+m.theme.Faint.Render(vm.ShopName)))

	if vm.ShowAlternates {
		b.WriteString(m.section("他の日程", m.alternates(vm.Alternates)))
	}

	b.WriteString(m.section("レビュー", m.reviews(vm.Reviews)))
	if len(vm.Similar) > 0 {
		b.WriteString(m.section("近くの似たお仕事", m.similar(vm.Similar)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) section(title, body string) string {
	return m.theme.SectionTitle.Render(title) + "\n" + body + "\n\n"
}

func (m Model) wrap(s string) string {
	if m.width > 2 {
		return wordwrap.String(s, m.width-2)
	}
	return s
}

func (m Model) list(items []string) string {
	if len(items) == 0 {
		return m.theme.Faint.Render(detail.FallbackNotes)
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "・" + item
	}
	return strings.Join(out, "\n")
}

func (m Model) alternates(slots []detail.Slot) string {
	rows := make([]string, len(slots))
	for i, s := range slots {
		rows[i] = fmt.Sprintf("%s (%s)  %s  %s  残り %s",
			s.Date, s.Weekday, s.Time, m.theme.Price.Render(s.Price), s.Seats)
	}
	return strings.Join(rows, "\n")
}

func (m Model) reviews(reviews []catalog.Review) string {
	if len(reviews) == 0 {
		return m.theme.Faint.Render(detail.NoReviewsText)
	}
	out := make([]string, 0, len(reviews))
	for _, r := range reviews {
		head := m.theme.ReviewUser.Render(r.User) + " " + m.theme.ReviewDate.Render(r.Date)
		out = append(out, head+"\n"+m.wrap(r.Text))
	}
	return strings.Join(out, "\n\n")
}

func (m Model) similar(jobs []detail.SimilarJob) string {
	cards := make([]string, 0, len(jobs))
	for i, job := range jobs {
		head := m.cards.Meta.Render(fmt.Sprintf("[%d]", i+1)) +
			" " + m.cards.BadgeUrgent.Render("締切")
		body := lipgloss.JoinVertical(lipgloss.Left,
			head,
			m.cards.Title.Render(job.Title),
			m.cards.Meta.Render(job.Time+"  "+job.Place),
			m.cards.Price.Render(job.Price),
		)
		cards = append(cards, m.cards.Frame.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
