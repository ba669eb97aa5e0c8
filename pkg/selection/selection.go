// Package selection implements the single-choice option groups used by the
// sort sheet, the location preference list and the date strip. Groups have
// radio semantics: selecting an option always clears the previous one.
package selection

// Group holds a fixed option set with exactly one selected entry.
type Group struct {
	options []string
	index   int
}

// NewGroup builds a group over options with initial selected. An initial
// index outside the option set falls back to 0.
func NewGroup(options []string, initial int) *Group {
	g := &Group{options: append([]string(nil), options...)}
	if initial >= 0 && initial < len(g.options) {
		g.index = initial
	}
	return g
}

// Select marks option i as the single selected entry. Out-of-range indices
// are ignored and leave the selection unchanged.
func (g *Group) Select(i int) bool {
	if i < 0 || i >= len(g.options) {
		return false
	}
	g.index = i
	return true
}

// SelectValue selects the option matching v, reporting whether it was found.
func (g *Group) SelectValue(v string) bool {
	for i, opt := range g.options {
		if opt == v {
			g.index = i
			return true
		}
	}
	return false
}

// Selected returns the index of the selected option.
func (g *Group) Selected() int { return g.index }

// Value returns the selected option's label.
func (g *Group) Value() string {
	if g.index < 0 || g.index >= len(g.options) {
		return ""
	}
	return g.options[g.index]
}

// Options returns a copy of the option labels.
func (g *Group) Options() []string {
	return append([]string(nil), g.options...)
}

// Len reports the number of options.
func (g *Group) Len() int { return len(g.options) }
