// Package detail builds the view model for the job detail screen. Every open
// rebuilds the whole model from the catalog record, so repeated opens of the
// same index produce identical output.
package detail

import (
	"baitonavi/pkg/catalog"
)

// Fallback literals for absent optional fields. These are part of the
// rendered contract, not placeholders.
const (
	FallbackDescription = "詳細情報なし"
	FallbackNotes       = "特になし"
	FallbackAddress     = "住所情報なし"
	FallbackShopName    = "店舗名なし"
	NoReviewsText       = "まだレビューはありません。"
)

// Slot is one alternate time/price entry.
type Slot struct {
	Date    string
	Weekday string
	Time    string
	Price   string
	Seats   string
}

// SimilarJob is a tappable summary of another catalog record. Index is the
// record's own catalog position so chained opens resolve correctly.
type SimilarJob struct {
	Index int
	Title string
	Time  string
	Place string
	Price string
	Color string
}

// ViewModel is the fully resolved detail screen content.
type ViewModel struct {
	Index       int
	Title       string
	Price       string
	DisplayTime string
	Color       string
	Urgent      bool

	Description string
	Notes       string
	Address     string
	ShopName    string

	Items      []string
	Conditions []string
	Reviews    []catalog.Review

	ShowAlternates bool
	Alternates     []Slot

	Similar []SimilarJob
}

// maxSimilar caps the similar-jobs strip.
const maxSimilar = 3

// Assembler resolves catalog records into detail view models.
type Assembler struct {
	catalog *catalog.Catalog
}

// NewAssembler wraps the provided catalog.
func NewAssembler(c *catalog.Catalog) *Assembler {
	return &Assembler{catalog: c}
}

// Assemble builds the view model for the record at index. An out-of-range
// index or missing catalog yields (nil, false) so stale handlers degrade to
// doing nothing.
func (a *Assembler) Assemble(index int) (*ViewModel, bool) {
	if a == nil || a.catalog == nil {
		return nil, false
	}
	rec, ok := a.catalog.Get(index)
	if !ok {
		return nil, false
	}

	vm := &ViewModel{
		Index:       index,
		Title:       rec.Title,
		Price:       rec.Price,
		DisplayTime: rec.DisplayTime(),
		Color:       rec.Color,
		Urgent:      rec.Urgent,
		Description: fallback(rec.Description, FallbackDescription),
		Notes:       fallback(rec.Notes, FallbackNotes),
		Address:     fallback(rec.Address, FallbackAddress),
		ShopName:    fallback(rec.ShopName, FallbackShopName),
		Items:       copyList(rec.Items),
		Conditions:  copyList(rec.Conditions),
		Reviews:     append([]catalog.Review(nil), rec.Reviews...),
	}

	vm.ShowAlternates = rec.HasOtherDates
	if rec.HasOtherDates {
		vm.Alternates = alternateSlots(rec)
	}

	for _, i := range a.catalog.SimilarTo(index, maxSimilar) {
		other, ok := a.catalog.Get(i)
		if !ok {
			continue
		}
		vm.Similar = append(vm.Similar, SimilarJob{
			Index: i,
			Title: other.Title,
			Time:  other.DisplayTime(),
			Place: other.Place,
			Price: other.Price,
			Color: other.Color,
		})
	}
	return vm, true
}

// alternateSlots returns the fixed illustrative schedule. The second entry
// reuses the record's own price so the displayed alternate stays consistent
// with the item being viewed.
func alternateSlots(rec catalog.JobRecord) []Slot {
	return []Slot{
		{Date: "12/2", Weekday: "火", Time: "22:00 〜 1:00", Price: "¥4,279", Seats: "0 / 1"},
		{Date: "12/3", Weekday: "水", Time: "21:00 〜 1:00", Price: rec.Price, Seats: "0 / 1"},
	}
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// copyList normalizes absent lists to empty ones; the detail screen renders
// them as empty item lists, never as an error.
func copyList(in []string) []string {
	out := make([]string, 0, len(in))
	return append(out, in...)
}
