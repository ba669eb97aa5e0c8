package selection

import "testing"

func TestRadioSemantics(t *testing.T) {
	g := NewGroup([]string{"おすすめ順", "時給が高い順", "新着順"}, 0)

	if g.Value() != "おすすめ順" {
		t.Fatalf("initial value = %q", g.Value())
	}
	if !g.Select(2) {
		t.Fatal("Select(2) failed")
	}
	if g.Selected() != 2 || g.Value() != "新着順" {
		t.Fatalf("after Select(2): index=%d value=%q", g.Selected(), g.Value())
	}

	// Exactly one option is ever selected: the group holds a single index.
	if !g.SelectValue("時給が高い順") {
		t.Fatal("SelectValue failed for a known option")
	}
	if g.Selected() != 1 {
		t.Fatalf("last selection did not win, index=%d", g.Selected())
	}
}

func TestSelectOutOfRangeIsIgnored(t *testing.T) {
	g := NewGroup([]string{"渋谷", "新宿"}, 1)
	if g.Select(5) || g.Select(-1) {
		t.Fatal("out of range select reported success")
	}
	if g.Selected() != 1 {
		t.Fatalf("selection changed by invalid select, index=%d", g.Selected())
	}
	if g.SelectValue("横浜") {
		t.Fatal("unknown value reported success")
	}
}

func TestInitialIndexFallback(t *testing.T) {
	g := NewGroup([]string{"a", "b"}, 9)
	if g.Selected() != 0 {
		t.Fatalf("invalid initial index should fall back to 0, got %d", g.Selected())
	}
}
