// Package mappane draws the job map as a character grid. The pane is the
// map widget the router nudges after a map-screen activation settles.
package mappane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"baitonavi/pkg/geo"
	"baitonavi/pkg/tui/theme"
)

// spanDegrees is the coordinate span mapped onto the grid, roughly a
// walkable neighborhood at Tokyo latitudes.
const spanDegrees = 0.02

// Model plots pins around a center point. The viewport is computed lazily:
// plotting happens on NotifyResize, not on every frame, mirroring how
// embedded map widgets behave.
type Model struct {
	theme  theme.MapTheme
	pins   []geo.Pin
	center geo.LatLng
	width  int
	height int

	grid   []string
	ready  bool
	stale  bool
	resize int
}

// New builds a pane over the given pins, centered on center.
func New(th theme.MapTheme, center geo.LatLng, pins []geo.Pin) *Model {
	return &Model{
		theme:  th,
		pins:   append([]geo.Pin(nil), pins...),
		center: center,
		stale:  true,
	}
}

// SetSize records the pane bounds; the grid is replotted on the next resize
// notification.
func (m *Model) SetSize(width, height int) {
	if width != m.width || height != m.height {
		m.stale = true
	}
	m.width = width
	m.height = height
}

// NotifyResize recomputes the viewport. Part of the geo.Widget contract.
func (m *Model) NotifyResize() {
	m.resize++
	m.plot()
}

// SetCenter recenters the viewport. Part of the geo.Widget contract.
func (m *Model) SetCenter(center geo.LatLng) {
	if center != m.center {
		m.stale = true
	}
	m.center = center
	m.plot()
}

// Ready reports whether the pane has been laid out at least once.
func (m *Model) Ready() bool { return m.ready }

// Resizes counts resize notifications, for callers that need to observe the
// settle handshake.
func (m *Model) Resizes() int { return m.resize }

// Center returns the current viewport center.
func (m *Model) Center() geo.LatLng { return m.center }

func (m *Model) plot() {
	cols, rows := m.gridSize()
	if cols < 3 || rows < 3 {
		return
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat("·", cols))
	}

	cr, cc := rows/2, cols/2
	grid[cr][cc] = '◎'
	for _, pin := range m.pins {
		r, c, ok := m.cell(pin.LatLng, rows, cols)
		if !ok || (r == cr && c == cc) {
			continue
		}
		grid[r][c] = '●'
	}

	m.grid = make([]string, rows)
	for r := range grid {
		m.grid[r] = string(grid[r])
	}
	m.ready = true
	m.stale = false
}

func (m *Model) gridSize() (cols, rows int) {
	cols = m.width - 2
	rows = m.height - 2 - len(m.pins) // legend rows below the frame
	if rows > m.height-4 {
		rows = m.height - 4
	}
	return cols, rows
}

// cell maps a coordinate to a grid cell. North is up, so latitude grows
// toward row zero.
func (m *Model) cell(p geo.LatLng, rows, cols int) (r, c int, ok bool) {
	dLat := p.Lat - m.center.Lat
	dLng := p.Lng - m.center.Lng
	r = rows/2 - int(dLat/spanDegrees*float64(rows))
	c = cols/2 + int(dLng/spanDegrees*float64(cols))
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}

// View renders the framed grid with a distance legend. Before the first
// resize notification the pane shows a loading hint instead of a stale grid.
func (m *Model) View() string {
	if !m.ready || m.stale {
		return m.theme.Legend.Render("地図を読み込み中…")
	}
	rows := make([]string, 0, len(m.grid))
	for _, line := range m.grid {
		rows = append(rows, strings.ReplaceAll(
			strings.ReplaceAll(line, "◎", m.theme.Center.Render("◎")),
			"●", m.theme.Pin.Render("●")))
	}
	body := m.theme.Frame.Render(strings.Join(rows, "\n"))

	legend := make([]string, 0, len(m.pins))
	for _, pin := range m.pins {
		meters := geo.Distance(m.center, pin.LatLng)
		legend = append(legend, m.theme.Legend.Render(
			fmt.Sprintf("● %s (%.0fm)", pin.Title, meters)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{body}, legend...)...)
}
