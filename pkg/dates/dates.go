// Package dates generates the rolling date strip shown above the job grid.
package dates

import "time"

// WindowDays is the fixed length of the rolling window.
const WindowDays = 30

var weekChars = []string{"日", "月", "火", "水", "木", "金", "土"}

// Cell is one selectable day in the strip.
type Cell struct {
	Label string
	Day   int
	Today bool
}

// Strip returns count labeled day cells starting at now. The first cell is
// labeled 今日, the rest carry the Japanese weekday character.
func Strip(now time.Time, count int) []Cell {
	if count <= 0 {
		count = WindowDays
	}
	cells := make([]Cell, 0, count)
	for i := 0; i < count; i++ {
		d := now.AddDate(0, 0, i)
		label := weekChars[int(d.Weekday())]
		if i == 0 {
			label = "今日"
		}
		cells = append(cells, Cell{Label: label, Day: d.Day(), Today: i == 0})
	}
	return cells
}
