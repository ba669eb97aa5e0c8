// Package events defines the cross-component messages of the TUI.
package events

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"baitonavi/pkg/screen"
)

// ScreenRequestMsg asks the root model to route to a screen. Tab marks
// requests that came from the nav bar and should move the highlight.
type ScreenRequestMsg struct {
	Screen screen.Screen
	Tab    bool
}

// GoToScreenCmd requests a plain screen transition.
func GoToScreenCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenRequestMsg{Screen: s}
	}
}

// SwitchTabCmd requests a transition that also syncs the nav highlight.
func SwitchTabCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenRequestMsg{Screen: s, Tab: true}
	}
}

// OpenDetailMsg asks the root model to assemble and show the detail screen
// for the record at the given catalog index.
type OpenDetailMsg struct {
	Index int
}

// OpenDetailCmd wraps OpenDetailMsg in a tea.Cmd.
func OpenDetailCmd(index int) tea.Cmd {
	return func() tea.Msg {
		return OpenDetailMsg{Index: index}
	}
}

// SortChosenMsg carries the picked sort label; the sheet and its overlay are
// already dismissed when this fires.
type SortChosenMsg struct {
	Value string
}

// PrefChosenMsg carries the picked location preference label. The root model
// propagates it to the home header and settings row, then routes to the
// location-confirmation screen.
type PrefChosenMsg struct {
	Value string
}

// MapSettleMsg fires after the settle delay following map-screen activation;
// the handler resizes and recenters the map widget. It is delivered even if
// the user already navigated away, which is harmless.
type MapSettleMsg struct{}
