// Package printers renders catalog listings for the terminal.
package printers

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"baitonavi/pkg/catalog"
)

// PrettyPrint writes human-facing listing tables. Color is dropped when
// stdout is not a terminal.
type PrettyPrint struct {
	ShowIndex bool
}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// Title prints a bold, underlined heading with the record count.
func (pp *PrettyPrint) Title(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d 件\n", count)
}

// Listing prints the records as an aligned table in catalog order.
func (pp *PrettyPrint) Listing(records ...catalog.JobRecord) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" none")
		return
	}

	urgent := color.New(color.FgHiRed, color.Bold)

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true
	if pp.ShowIndex {
		table.AddRow("#", "TITLE", "TIME", "PLACE", "PRICE", "")
	} else {
		table.AddRow("TITLE", "TIME", "PLACE", "PRICE", "")
	}
	for i, rec := range records {
		badge := ""
		if rec.Urgent {
			badge = urgent.Sprint("締切間近")
		}
		title := swatch(rec.Color) + " " + rec.Title
		if pp.ShowIndex {
			table.AddRow(fmt.Sprintf("%d", i), title, rec.DisplayTime(), rec.Place, rec.Price, badge)
		} else {
			table.AddRow(title, rec.DisplayTime(), rec.Place, rec.Price, badge)
		}
	}
	fmt.Println(table)
}

// swatch renders the record's color key as a terminal-backed block.
func swatch(hex string) string {
	if color.NoColor {
		return " "
	}
	p := termenv.ColorProfile()
	return termenv.String(" ").Background(p.Color(hex)).String()
}
