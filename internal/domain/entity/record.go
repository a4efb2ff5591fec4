package entity

import "strings"

// Record one catalog item shown as a table row
type Record struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Date     string  `json:"date" yaml:"date"` // YYYY-MM-DD
	Price    float64 `json:"price" yaml:"price"`
	Rating   float64 `json:"rating" yaml:"rating"`
}

// CategoryKey case-folded category used for matching and the category index
func (r Record) CategoryKey() string {
	return strings.ToLower(r.Category)
}

// Catalog seed records together with where they came from
type Catalog struct {
	Records []Record
	Source  string // file name or db path
}

// CloneRecords returns a copy of records that shares no backing array with the input.
// A nil input yields an empty, non-nil slice.
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// DisplayDate converts canonical YYYY-MM-DD into DD-MM-YYYY.
// ok is false when the value does not split into exactly three parts.
func DisplayDate(canonical string) (string, bool) {
	parts := strings.Split(canonical, "-")
	if len(parts) != 3 {
		return "", false
	}
	year, month, day := parts[0], parts[1], parts[2]
	return day + "-" + month + "-" + year, true
}
