// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across screens.
type Theme struct {
	Header HeaderTheme
	Card   CardTheme
	Detail DetailTheme
	Sheet  SheetTheme
	Nav    NavTheme
	Strip  StripTheme
	Map    MapTheme
}

// HeaderTheme styles the screen title row and the location label.
type HeaderTheme struct {
	Title    lipgloss.Style
	Location lipgloss.Style
	SortHint lipgloss.Style
}

// CardTheme styles job cards in the grid and the similar-jobs strip.
type CardTheme struct {
	Frame         lipgloss.Style
	FrameSelected lipgloss.Style
	Title         lipgloss.Style
	Meta          lipgloss.Style
	Price         lipgloss.Style
	BadgeUrgent   lipgloss.Style
	BadgeBeginner lipgloss.Style
}

// DetailTheme styles the detail screen sections.
type DetailTheme struct {
	Title        lipgloss.Style
	Price        lipgloss.Style
	SectionTitle lipgloss.Style
	Body         lipgloss.Style
	Faint        lipgloss.Style
	ReviewUser   lipgloss.Style
	ReviewDate   lipgloss.Style
}

// SheetTheme styles the sort bottom sheet and its dimming overlay.
type SheetTheme struct {
	Frame          lipgloss.Style
	Title          lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
}

// NavTheme styles the bottom navigation bar.
type NavTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// StripTheme styles the date strip cells.
type StripTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// MapTheme styles the map pane.
type MapTheme struct {
	Frame  lipgloss.Style
	Pin    lipgloss.Style
	Center lipgloss.Style
	Legend lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Location: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			SortHint: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Card: CardTheme{
			Frame:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			FrameSelected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("213")).Padding(0, 1),
			Title:         lipgloss.NewStyle().Bold(true),
			Meta:          lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			BadgeUrgent:   lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("231")).Padding(0, 1),
			BadgeBeginner: lipgloss.NewStyle().Background(lipgloss.Color("242")).Foreground(lipgloss.Color("231")).Padding(0, 1),
		},
		Detail: DetailTheme{
			Title:        lipgloss.NewStyle().Bold(true),
			Price:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Body:         lipgloss.NewStyle(),
			Faint:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			ReviewUser:   lipgloss.NewStyle().Bold(true),
			ReviewDate:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Sheet: SheetTheme{
			Frame:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Title:          lipgloss.NewStyle().Bold(true),
			Option:         lipgloss.NewStyle(),
			OptionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		},
		Nav: NavTheme{
			Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Strip: StripTheme{
			Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("203")).Padding(0, 1),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		},
		Map: MapTheme{
			Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
			Pin:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Center: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			Legend: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// Swatch builds a style that renders text on the card's color key, picking a
// readable foreground from the background's luminance.
func Swatch(hex string) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	c, err := colorful.Hex(hex)
	if err != nil {
		return style.Background(lipgloss.Color("241")).Foreground(lipgloss.Color("231"))
	}
	_, _, l := c.Hsl()
	fg := "231" // near white
	if l > 0.6 {
		fg = "16" // near black on light swatches
	}
	return style.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color(fg))
}
