package usecase

import (
	"strings"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

// VisibleRecords returns the records that satisfy every active predicate of spec,
// in their original order. The result is never nil and never aliases records.
func VisibleRecords(records []entity.Record, spec entity.FilterSpec) []entity.Record {
	name := strings.ToLower(spec.NameQuery)

	out := make([]entity.Record, 0, len(records))
	for _, r := range records {
		if matchesName(r, name) &&
			matchesCategory(r, spec.Categories) &&
			matchesDate(r, spec.DateQuery) &&
			spec.Price.Matches(r.Price) &&
			spec.MinRating.Matches(r.Rating) {
			out = append(out, r)
		}
	}
	return out
}

// CategoryIndex distinct case-folded categories in first-appearance order
func CategoryIndex(records []entity.Record) []string {
	seen := make(map[string]struct{}, len(records))
	keys := make([]string, 0)
	for _, r := range records {
		key := r.CategoryKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

func matchesName(r entity.Record, lowerQuery string) bool {
	return lowerQuery == "" || strings.Contains(strings.ToLower(r.Name), lowerQuery)
}

func matchesCategory(r entity.Record, categories map[string]struct{}) bool {
	if len(categories) == 0 {
		return true
	}
	_, ok := categories[r.CategoryKey()]
	return ok
}

// matchesDate compares display strings, not calendar dates: "2023-1-1" never
// matches "01-01-2023". A record date that does not split into three parts
// is a non-match.
func matchesDate(r entity.Record, query string) bool {
	if query == "" {
		return true
	}
	display, ok := entity.DisplayDate(r.Date)
	return ok && display == query
}
