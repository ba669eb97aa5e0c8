package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"baitonavi/pkg/catalog"
	"baitonavi/pkg/geo"
	"baitonavi/pkg/screen"
	"baitonavi/pkg/store"
	"baitonavi/pkg/tui/events"
)

func testConfig() *store.Config {
	return &store.Config{
		Path:       "",
		Center:     geo.LatLng{Lat: 35.6595, Lng: 139.7005},
		Pins:       store.DefaultPins(),
		Preference: "渋谷",
	}
}

func newApp(t *testing.T) *Model {
	t.Helper()
	m := New(catalog.New(catalog.Seed()), testConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyPress(m *Model, code rune, text string) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code, Text: text})
	return cmd
}

func TestStartsOnHome(t *testing.T) {
	m := newApp(t)
	if m.router.Current() != screen.Home {
		t.Fatalf("start screen = %q", m.router.Current())
	}
	if m.nav.Active() != screen.NavHome {
		t.Fatalf("start highlight = %q", m.nav.Active())
	}
}

func TestTabSwitchMovesHighlight(t *testing.T) {
	m := newApp(t)
	m.Update(events.ScreenRequestMsg{Screen: screen.Messages, Tab: true})
	if m.router.Current() != screen.Messages {
		t.Fatalf("screen = %q", m.router.Current())
	}
	if m.nav.Active() != screen.NavMsg {
		t.Fatalf("highlight = %q", m.nav.Active())
	}
}

func TestUnknownScreenIsSilentNoOp(t *testing.T) {
	m := newApp(t)
	m.Update(events.ScreenRequestMsg{Screen: screen.Screen("bogus-screen")})
	if m.router.Current() != screen.Home {
		t.Fatalf("unknown id changed screen to %q", m.router.Current())
	}
}

func TestOpenDetailKeepsTabHighlight(t *testing.T) {
	m := newApp(t)
	m.Update(events.ScreenRequestMsg{Screen: screen.Work, Tab: true})
	m.Update(events.OpenDetailMsg{Index: 1})

	if m.router.Current() != screen.Detail {
		t.Fatalf("screen = %q", m.router.Current())
	}
	if m.nav.Active() != screen.NavWork {
		t.Fatalf("detail cleared the highlight: %q", m.nav.Active())
	}
	if m.detail.Showing() != 1 {
		t.Fatalf("detail shows %d", m.detail.Showing())
	}
}

func TestStaleDetailIndexLeavesScreenUp(t *testing.T) {
	m := newApp(t)
	m.Update(events.OpenDetailMsg{Index: 10})
	if m.router.Current() != screen.Home {
		t.Fatalf("stale index changed screen to %q", m.router.Current())
	}
}

func TestPreferenceSurvivesDetailRoundTrip(t *testing.T) {
	m := newApp(t)
	m.Update(events.PrefChosenMsg{Value: "新宿"})
	if m.router.Current() != screen.Location {
		t.Fatalf("screen = %q", m.router.Current())
	}

	m.Update(events.OpenDetailMsg{Index: 0})
	keyPress(m, tea.KeyEscape, "")
	if m.prefLabel != "新宿" {
		t.Fatalf("preference label = %q after round trip", m.prefLabel)
	}
	if m.router.Current() != screen.Home {
		t.Fatalf("esc routed to %q", m.router.Current())
	}
}

func TestSortSheetModalAndCommit(t *testing.T) {
	m := newApp(t)
	keyPress(m, 's', "s")
	if !m.sheet.Visible() {
		t.Fatal("s did not open the sheet")
	}

	// While the sheet is up, number keys must not switch tabs.
	keyPress(m, '3', "3")
	if m.router.Current() != screen.Home {
		t.Fatalf("modal leak: screen = %q", m.router.Current())
	}

	keyPress(m, tea.KeyDown, "")
	cmd := keyPress(m, tea.KeyEnter, "")
	if m.sheet.Visible() {
		t.Fatal("commit left the sheet visible")
	}
	if cmd == nil {
		t.Fatal("commit produced no message")
	}
	m.Update(cmd())
	if m.sortLabel != "時給が高い順" {
		t.Fatalf("sort label = %q", m.sortLabel)
	}
}

func TestMapSettleAfterFirstLayout(t *testing.T) {
	m := New(catalog.New(catalog.Seed()), testConfig())

	// Before the first layout there is no map handle, so entering the map
	// screen schedules nothing and the pane shows its loading hint.
	cmd := keyPress(m, 'm', "m")
	if cmd != nil {
		t.Fatal("settle scheduled before the first layout")
	}
	if !strings.Contains(m.View(), "地図を読み込み中") {
		t.Fatal("unlaid-out map pane should show the loading hint")
	}

	// The first window size initializes the widget; from then on every map
	// visit schedules a settle.
	keyPress(m, tea.KeyEscape, "")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !m.mapP.Ready() {
		t.Fatal("first layout did not initialize the map widget")
	}

	cmd = keyPress(m, 'm', "m")
	if cmd == nil {
		t.Fatal("no settle scheduled on first map visit after layout")
	}

	before := m.mapP.Resizes()
	m.Update(events.MapSettleMsg{})
	if m.mapP.Resizes() != before+1 {
		t.Fatal("settle message did not resize the widget")
	}
	if m.mapP.Center() != testConfig().Center {
		t.Fatalf("settle recentered to %+v", m.mapP.Center())
	}

	view := m.View()
	if strings.Contains(view, "地図を読み込み中") {
		t.Fatal("map pane stuck on the loading hint after settle")
	}
	if !strings.Contains(view, "◎") {
		t.Fatal("settled map pane renders no grid")
	}
}

func TestNumberKeysSwitchTabs(t *testing.T) {
	m := newApp(t)
	cmd := keyPress(m, '4', "4")
	if cmd == nil {
		t.Fatal("number key produced no request")
	}
	m.Update(cmd())
	if m.router.Current() != screen.Messages {
		t.Fatalf("screen = %q", m.router.Current())
	}
}

func TestDetailNumberKeysOpenSimilarNotTabs(t *testing.T) {
	m := newApp(t)
	m.Update(events.OpenDetailMsg{Index: 2})

	cmd := keyPress(m, '2', "2")
	if cmd == nil {
		t.Fatal("similar key produced nothing")
	}
	m.Update(cmd())
	if m.router.Current() != screen.Detail {
		t.Fatalf("screen = %q", m.router.Current())
	}
	// Similar strip of record 2 lists records 0, 1, 3; slot 2 is record 1.
	if m.detail.Showing() != 1 {
		t.Fatalf("chained open showed %d, want 1", m.detail.Showing())
	}
}
