package usecase

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/logging"
)

// TextField selects which free-text filter SetTextFilter changes
type TextField int

const (
	FieldName TextField = iota
	FieldDate
)

// TableController owns the session state of one displayed table: the working
// record set, the filter, the derived category index and the dropdown flag.
// It is not safe for concurrent use; a single event loop drives it.
type TableController struct {
	records      []entity.Record
	filter       entity.FilterSpec
	categories   []string
	dropdownOpen bool
	logger       *log.Logger
}

// NewTableController copies seed; later deletes never touch the caller's slice.
// A nil logger discards output.
func NewTableController(seed []entity.Record, logger *log.Logger) *TableController {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &TableController{
		records: entity.CloneRecords(seed),
		filter:  entity.DefaultFilterSpec(),
		logger:  logger,
	}
	c.reindex()
	return c
}

// Dispatch applies a user action
func (c *TableController) Dispatch(a Action) {
	if a == nil {
		return
	}
	a.apply(c)
}

// SetTextFilter replaces the name or date query, leaving every other field as is
func (c *TableController) SetTextFilter(field TextField, value string) {
	switch field {
	case FieldName:
		c.filter.NameQuery = value
	case FieldDate:
		c.filter.DateQuery = value
	}
}

// SetNameQuery replaces the name query
func (c *TableController) SetNameQuery(value string) {
	c.SetTextFilter(FieldName, value)
}

// SetDateQuery replaces the date query (DD-MM-YYYY)
func (c *TableController) SetDateQuery(value string) {
	c.SetTextFilter(FieldDate, value)
}

// SetPriceBucket replaces the price bucket
func (c *TableController) SetPriceBucket(b entity.PriceBucket) {
	c.filter.Price = b
}

// SetRatingThreshold replaces the minimum rating
func (c *TableController) SetRatingThreshold(t entity.RatingThreshold) {
	c.filter.MinRating = t
}

// ToggleCategory selects key when absent and deselects it when present
func (c *TableController) ToggleCategory(key string) {
	key = strings.ToLower(key)
	if _, ok := c.filter.Categories[key]; ok {
		delete(c.filter.Categories, key)
		return
	}
	c.filter.Categories[key] = struct{}{}
}

// ToggleCategoryDropdown flips dropdown visibility. Filtering is unaffected.
func (c *TableController) ToggleCategoryDropdown() {
	c.dropdownOpen = !c.dropdownOpen
}

// DeleteRecord removes the record with id from the working set and reports
// whether anything was removed. The filter is left untouched.
func (c *TableController) DeleteRecord(id string) bool {
	kept := make([]entity.Record, 0, len(c.records))
	var removed []entity.Record
	for _, r := range c.records {
		if r.ID == id {
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	if len(removed) == 0 {
		c.logger.Debug("delete ignored, record not in working set", "id", id)
		return false
	}
	for _, r := range removed {
		c.logger.Info("deleting record", "id", r.ID, "name", r.Name, "category", r.Category)
	}
	c.records = kept
	c.reindex()
	return true
}

// ResetFilters restores the default filter. Records and dropdown state are kept.
func (c *TableController) ResetFilters() {
	c.filter = entity.DefaultFilterSpec()
}

// VisibleRecords the working set narrowed by the current filter
func (c *TableController) VisibleRecords() []entity.Record {
	return VisibleRecords(c.records, c.filter)
}

// Categories the category index of the working set
func (c *TableController) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Filter a copy of the current filter
func (c *TableController) Filter() entity.FilterSpec {
	return c.filter.Clone()
}

// DropdownVisible reports whether the category dropdown is open
func (c *TableController) DropdownVisible() bool {
	return c.dropdownOpen
}

// Records a copy of the working set, unfiltered
func (c *TableController) Records() []entity.Record {
	return entity.CloneRecords(c.records)
}

func (c *TableController) reindex() {
	c.categories = CategoryIndex(c.records)
}
