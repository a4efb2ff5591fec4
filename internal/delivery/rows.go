// Package delivery holds what every presentation of the table agrees on:
// column headers, cell formatting and the empty-table text.
package delivery

import (
	"strconv"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

// NoDataText shown in place of rows when nothing matches the filter
const NoDataText = "No data available"

// Headers table column titles, in cell order
var Headers = []string{"Name", "Category", "Date", "Price", "Rating"}

// Row cells of one record; category keeps its original case
func Row(r entity.Record) []string {
	return []string{
		r.Name,
		r.Category,
		r.Date,
		FormatPrice(r.Price),
		strconv.FormatFloat(r.Rating, 'f', -1, 64),
	}
}

// Rows cells for every record, in order
func Rows(records []entity.Record) [][]string {
	out := make([][]string, 0, len(records))
	for _, r := range records {
		out = append(out, Row(r))
	}
	return out
}

// FormatPrice renders 1200 as "1200/-"
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "/-"
}
