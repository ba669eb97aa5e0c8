package screen

import "testing"

func TestGoToActivatesExactlyOne(t *testing.T) {
	r := NewRouter()
	for _, s := range All() {
		r.GoTo(s)
		if r.Current() != s {
			t.Fatalf("GoTo(%q): current = %q", s, r.Current())
		}
	}
}

func TestGoToUnknownIsNoOp(t *testing.T) {
	r := NewRouter()
	r.GoTo(Map)
	if effects := r.GoTo(Screen("bogus-screen")); effects != nil {
		t.Fatalf("unknown screen produced effects: %v", effects)
	}
	if r.Current() != Map {
		t.Fatalf("unknown screen changed state to %q", r.Current())
	}
}

func TestSwitchTabHighlightsMappedEntry(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		screen Screen
		nav    NavEntry
	}{
		{Home, NavHome},
		{Favorites, NavFav},
		{Work, NavWork},
		{Messages, NavMsg},
		{MyPage, NavMyPage},
	}
	for _, tc := range tests {
		r.SwitchTab(tc.screen)
		if r.ActiveNav() != tc.nav {
			t.Errorf("SwitchTab(%q): nav = %q, want %q", tc.screen, r.ActiveNav(), tc.nav)
		}
		if r.Current() != tc.screen {
			t.Errorf("SwitchTab(%q): current = %q", tc.screen, r.Current())
		}
	}
}

func TestSwitchTabOutsideTableKeepsHighlight(t *testing.T) {
	r := NewRouter()
	r.SwitchTab(Work)

	// Entering detail via a card tap must not move the nav highlight.
	r.SwitchTab(Detail)
	if r.Current() != Detail {
		t.Fatalf("current = %q, want detail", r.Current())
	}
	if r.ActiveNav() != NavWork {
		t.Fatalf("nav = %q, want nav-work preserved", r.ActiveNav())
	}
}

func TestMapSettleRequiresInitializedWidget(t *testing.T) {
	r := NewRouter()
	if effects := r.GoTo(Map); len(effects) != 0 {
		t.Fatalf("settle emitted without a map handle: %v", effects)
	}

	ready := false
	r.SetMapReady(func() bool { return ready })
	if effects := r.GoTo(Map); len(effects) != 0 {
		t.Fatalf("settle emitted while handle not ready: %v", effects)
	}

	ready = true
	effects := r.GoTo(Map)
	if len(effects) != 1 || effects[0] != EffectMapSettle {
		t.Fatalf("expected a single map settle effect, got %v", effects)
	}

	// Other screens never request a settle.
	if effects := r.GoTo(Home); len(effects) != 0 {
		t.Fatalf("home transition produced effects: %v", effects)
	}
}

func TestNavEntryFor(t *testing.T) {
	if nav, ok := NavEntryFor(Favorites); !ok || nav != NavFav {
		t.Fatalf("NavEntryFor(favorites) = %q, %v", nav, ok)
	}
	if _, ok := NavEntryFor(Detail); ok {
		t.Fatal("detail should not map to a nav entry")
	}
}
