// Package app wires the screens, the router and the components into the
// root Bubble Tea model.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"baitonavi/pkg/catalog"
	"baitonavi/pkg/detail"
	"baitonavi/pkg/screen"
	"baitonavi/pkg/store"
	"baitonavi/pkg/tui/components/datestrip"
	"baitonavi/pkg/tui/components/jobdetail"
	"baitonavi/pkg/tui/components/jobgrid"
	"baitonavi/pkg/tui/components/mappane"
	"baitonavi/pkg/tui/components/navbar"
	"baitonavi/pkg/tui/components/prefselect"
	"baitonavi/pkg/tui/components/sortsheet"
	"baitonavi/pkg/tui/events"
	"baitonavi/pkg/tui/theme"
)

// Model is the root of the UI tree. It owns the router and dispatches to the
// component for the active screen.
type Model struct {
	theme     theme.Theme
	router    *screen.Router
	assembler *detail.Assembler
	cfg       *store.Config

	nav    navbar.Model
	strip  datestrip.Model
	grid   jobgrid.Model
	detail jobdetail.Model
	sheet  sortsheet.Model
	pref   prefselect.Model
	mapP   *mappane.Model

	prefLabel string
	sortLabel string

	width  int
	height int
}

// New builds the root model over a loaded catalog and config.
func New(c *catalog.Catalog, cfg *store.Config) *Model {
	th := theme.Default()
	m := Model{
		theme:     th,
		router:    screen.NewRouter(),
		assembler: detail.NewAssembler(c),
		cfg:       cfg,
		nav:       navbar.New(th.Nav),
		strip:     datestrip.New(th.Strip, time.Now()),
		grid:      jobgrid.New(th.Card, c),
		detail:    jobdetail.New(th.Detail, th.Card),
		sheet:     sortsheet.New(th.Sheet),
		pref:      prefselect.New(th.Sheet, cfg.Preference),
		mapP:      mappane.New(th.Map, cfg.Center, cfg.Pins),
		prefLabel: cfg.Preference,
		sortLabel: sortsheet.Options[0],
	}
	m.router.SetMapReady(m.mapP.Ready)
	return &m
}

// Init requests nothing; the first WindowSizeMsg lays everything out.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen's component and executes
// router effects.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetWidth(msg.Width)
		m.strip.SetWidth(msg.Width)
		m.sheet.SetWidth(msg.Width)
		m.grid.SetSize(msg.Width, msg.Height-6)
		m.detail.SetSize(msg.Width, msg.Height-3)
		m.mapP.SetSize(msg.Width, msg.Height-3)
		// First layout initializes the map widget; until then the router
		// treats the map handle as absent and schedules no settle.
		m.mapP.NotifyResize()
		return m, nil

	case events.ScreenRequestMsg:
		var effects []screen.Effect
		if msg.Tab {
			effects = m.router.SwitchTab(msg.Screen)
		} else {
			effects = m.router.GoTo(msg.Screen)
		}
		m.nav.SetActive(m.router.ActiveNav())
		return m, m.runEffects(effects)

	case events.OpenDetailMsg:
		return m.openDetail(msg.Index)

	case events.SortChosenMsg:
		m.sortLabel = msg.Value
		return m, nil

	case events.PrefChosenMsg:
		m.prefLabel = msg.Value
		effects := m.router.GoTo(screen.Location)
		return m, m.runEffects(effects)

	case events.MapSettleMsg:
		m.mapP.NotifyResize()
		m.mapP.SetCenter(m.cfg.Center)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(key tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// The sheet is modal while visible.
	if m.sheet.Visible() {
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(key)
		return m, cmd
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "m":
		return m, m.runEffects(m.router.GoTo(screen.Map))
	case "p":
		return m, m.runEffects(m.router.GoTo(screen.PrefSelect))
	case "s":
		if m.router.Current() == screen.Home {
			m.sheet.Open()
			return m, nil
		}
	case "esc":
		effects := m.router.SwitchTab(screen.Home)
		m.nav.SetActive(m.router.ActiveNav())
		return m, m.runEffects(effects)
	}

	var cmd tea.Cmd
	switch m.router.Current() {
	case screen.Home:
		switch key.String() {
		case "left", "right", "h", "l":
			m.strip, cmd = m.strip.Update(key)
		case "up", "down", "k", "j", "enter":
			m.grid, cmd = m.grid.Update(key)
		default:
			m.nav, cmd = m.nav.Update(key)
		}
	case screen.Detail:
		m.detail, cmd = m.detail.Update(key)
	case screen.PrefSelect:
		m.pref, cmd = m.pref.Update(key)
	case screen.Location:
		if key.String() == "enter" {
			effects := m.router.SwitchTab(screen.Home)
			m.nav.SetActive(m.router.ActiveNav())
			return m, m.runEffects(effects)
		}
	default:
		m.nav, cmd = m.nav.Update(key)
	}
	return m, cmd
}

// openDetail assembles the record first and only routes when it resolves, so
// a stale index leaves the current screen up.
func (m *Model) openDetail(index int) (tea.Model, tea.Cmd) {
	vm, ok := m.assembler.Assemble(index)
	if !ok {
		return m, nil
	}
	m.detail.Show(vm)
	return m, m.runEffects(m.router.GoTo(screen.Detail))
}

// runEffects turns router effects into commands. The settle effect becomes a
// delayed tick that is delivered even if the user navigates away first.
func (m *Model) runEffects(effects []screen.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		if e == screen.EffectMapSettle {
			cmds = append(cmds, tea.Tick(screen.SettleDelay, func(time.Time) tea.Msg {
				return events.MapSettleMsg{}
			}))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// View renders the active screen with the nav bar docked at the bottom.
func (m *Model) View() string {
	var body string
	switch m.router.Current() {
	case screen.Home:
		body = m.homeView()
	case screen.Detail:
		body = m.detail.View()
	case screen.Map:
		body = m.mapP.View()
	case screen.PrefSelect:
		body = m.pref.View()
	case screen.Location:
		body = m.theme.Header.Title.Render("勤務地を設定しました") + "\n" +
			m.theme.Header.Location.Render(m.prefLabel) + "\n\n" +
			m.theme.Header.SortHint.Render("enter でホームへ")
	case screen.Favorites:
		body = m.placeholder("お気に入り")
	case screen.Work:
		body = m.placeholder("しごと管理")
	case screen.Messages:
		body = m.placeholder("メッセージ")
	case screen.MyPage:
		body = m.theme.Header.Title.Render("マイページ") + "\n" +
			"勤務地: " + m.theme.Header.Location.Render(m.prefLabel) + "\n" +
			"並び替え: " + m.theme.Header.SortHint.Render(m.sortLabel)
	}

	if m.sheet.Visible() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.sheet.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.nav.View())
}

func (m *Model) homeView() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Header.Title.Render("バイトナビ"),
		"  ",
		m.theme.Header.Location.Render(m.prefLabel+" ▼"),
		"  ",
		m.theme.Header.SortHint.Render(m.sortLabel),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.strip.View(), m.grid.View())
}

func (m *Model) placeholder(title string) string {
	return m.theme.Header.Title.Render(title) + "\n" +
		m.theme.Header.SortHint.Render("準備中です")
}

// Run starts the program in the alternate screen.
func Run(c *catalog.Catalog, cfg *store.Config) error {
	p := tea.NewProgram(New(c, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
