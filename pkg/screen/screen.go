// Package screen owns the visible-screen state machine. Exactly one screen
// is active at any time; transitions are pure and return a side-effect list
// for the shell to execute.
package screen

import "time"

// Screen identifies one full-page view out of a fixed closed set.
type Screen string

const (
	Home       Screen = "home"
	Favorites  Screen = "favorites"
	Work       Screen = "work"
	Messages   Screen = "messages"
	MyPage     Screen = "mypage"
	Map        Screen = "map"
	PrefSelect Screen = "location-preference"
	Location   Screen = "location"
	Detail     Screen = "detail"
)

// All lists every recognized screen.
func All() []Screen {
	return []Screen{Home, Favorites, Work, Messages, MyPage, Map, PrefSelect, Location, Detail}
}

// NavEntry identifies a bottom-navigation target.
type NavEntry string

const (
	NavNone   NavEntry = ""
	NavHome   NavEntry = "nav-home"
	NavFav    NavEntry = "nav-fav"
	NavWork   NavEntry = "nav-work"
	NavMsg    NavEntry = "nav-msg"
	NavMyPage NavEntry = "nav-mypage"
)

// navTable maps tab screens to their nav entry. Screens reached outside the
// tab bar (detail, map, preference) have no row and leave highlighting alone.
var navTable = map[Screen]NavEntry{
	Home:      NavHome,
	Favorites: NavFav,
	Work:      NavWork,
	Messages:  NavMsg,
	MyPage:    NavMyPage,
}

// NavEntryFor resolves the nav entry for a screen, reporting whether the
// screen participates in the tab bar.
func NavEntryFor(s Screen) (NavEntry, bool) {
	nav, ok := navTable[s]
	return nav, ok
}

// Effect is a side effect requested by a transition.
type Effect int

const (
	// EffectMapSettle asks the shell to notify the map widget to resize and
	// recenter after SettleDelay, once the activation has taken effect.
	EffectMapSettle Effect = iota + 1
)

// SettleDelay is how long the shell waits before delivering EffectMapSettle.
// The map pane may still have its hidden-screen size when the transition
// lands; widgets compute their viewport at resize time.
const SettleDelay = 100 * time.Millisecond

// Router holds the current screen and nav highlight.
type Router struct {
	current  Screen
	nav      NavEntry
	known    map[Screen]struct{}
	mapReady func() bool
}

// NewRouter starts on the home screen with the home tab highlighted.
func NewRouter() *Router {
	known := make(map[Screen]struct{})
	for _, s := range All() {
		known[s] = struct{}{}
	}
	return &Router{current: Home, nav: NavHome, known: known}
}

// SetMapReady installs the probe for an initialized map handle. Without one
// the map-settle effect is never emitted.
func (r *Router) SetMapReady(fn func() bool) {
	r.mapReady = fn
}

// Current returns the single active screen.
func (r *Router) Current() Screen { return r.current }

// ActiveNav returns the highlighted nav entry, NavNone when nothing is.
func (r *Router) ActiveNav() NavEntry { return r.nav }

// Known reports whether id names a recognized screen.
func (r *Router) Known(id Screen) bool {
	_, ok := r.known[id]
	return ok
}

// GoTo activates id, deactivating the previous screen. Unknown ids are a
// silent no-op; callers pass trusted UI constants and a stale one must not
// take the experience down.
func (r *Router) GoTo(id Screen) []Effect {
	if !r.Known(id) {
		return nil
	}
	r.current = id
	if id == Map && r.mapReady != nil && r.mapReady() {
		return []Effect{EffectMapSettle}
	}
	return nil
}

// SwitchTab composes GoTo with nav-highlight sync. Ids outside the nav table
// still transition (when known) but leave the highlight untouched.
func (r *Router) SwitchTab(id Screen) []Effect {
	effects := r.GoTo(id)
	if nav, ok := navTable[id]; ok {
		r.nav = nav
	}
	return effects
}
