package catalog

import (
	"github.com/dustin/go-humanize"
)

// Review is a single worker review attached to a job record.
type Review struct {
	User string `json:"user"`
	Date string `json:"date"`
	Text string `json:"text"`
}

// JobRecord is one listing in the catalog. Records carry no persistent ID;
// identity is the record's position within the catalog.
type JobRecord struct {
	Title         string   `json:"title"`
	Time          string   `json:"time"`
	FullTime      string   `json:"fullTime,omitempty"`
	Place         string   `json:"place"`
	Price         string   `json:"price"`
	Color         string   `json:"color"`
	Urgent        bool     `json:"urgent,omitempty"`
	BeginnerOK    bool     `json:"beginnerOk,omitempty"`
	Description   string   `json:"desc,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Address       string   `json:"address,omitempty"`
	ShopName      string   `json:"shopName,omitempty"`
	Items         []string `json:"items,omitempty"`
	Conditions    []string `json:"conditions,omitempty"`
	Reviews       []Review `json:"reviews,omitempty"`
	HasOtherDates bool     `json:"hasOtherDates,omitempty"`
}

// DisplayTime returns the long form of the time window when present.
func (r JobRecord) DisplayTime() string {
	if r.FullTime != "" {
		return r.FullTime
	}
	return r.Time
}

// Catalog is an ordered, immutable sequence of job records addressed by
// zero-based position.
type Catalog struct {
	records []JobRecord
}

// New copies the provided records into a catalog.
func New(records []JobRecord) *Catalog {
	return &Catalog{records: append([]JobRecord(nil), records...)}
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Get returns the record at index i, reporting whether it exists.
func (c *Catalog) Get(i int) (JobRecord, bool) {
	if c == nil || i < 0 || i >= len(c.records) {
		return JobRecord{}, false
	}
	return c.records[i], true
}

// Records returns a copy of the backing slice in catalog order.
func (c *Catalog) Records() []JobRecord {
	if c == nil {
		return nil
	}
	return append([]JobRecord(nil), c.records...)
}

// SimilarTo returns up to max record indices other than index, preserving
// catalog order. An out-of-range index yields every record up to max.
func (c *Catalog) SimilarTo(index, max int) []int {
	if c == nil || max <= 0 {
		return nil
	}
	out := make([]int, 0, max)
	for i := range c.records {
		if i == index {
			continue
		}
		out = append(out, i)
		if len(out) == max {
			break
		}
	}
	return out
}

// FormatPrice renders an integer reward in yen the way listings display it,
// e.g. 4279 -> "¥4,279".
func FormatPrice(reward int) string {
	return "¥" + humanize.Comma(int64(reward))
}
