package usecase

import "github.com/yourusername/catalog-table/internal/domain/entity"

// Action a discrete user intent. Each concrete type maps to one TableController operation.
type Action interface {
	apply(c *TableController)
}

// ChangeName sets the name query
type ChangeName struct{ Text string }

// ChangeDate sets the date query (DD-MM-YYYY)
type ChangeDate struct{ Text string }

// ChangePrice sets the price bucket
type ChangePrice struct{ Bucket entity.PriceBucket }

// ChangeRating sets the minimum rating
type ChangeRating struct{ Threshold entity.RatingThreshold }

// ToggleCategory adds or removes a category key
type ToggleCategory struct{ Key string }

// ToggleDropdown flips category dropdown visibility
type ToggleDropdown struct{}

// Reset restores the default filter
type Reset struct{}

// Delete removes the record with ID from the working set
type Delete struct{ ID string }

func (a ChangeName) apply(c *TableController)     { c.SetNameQuery(a.Text) }
func (a ChangeDate) apply(c *TableController)     { c.SetDateQuery(a.Text) }
func (a ChangePrice) apply(c *TableController)    { c.SetPriceBucket(a.Bucket) }
func (a ChangeRating) apply(c *TableController)   { c.SetRatingThreshold(a.Threshold) }
func (a ToggleCategory) apply(c *TableController) { c.ToggleCategory(a.Key) }
func (ToggleDropdown) apply(c *TableController)   { c.ToggleCategoryDropdown() }
func (Reset) apply(c *TableController)            { c.ResetFilters() }
func (a Delete) apply(c *TableController)         { c.DeleteRecord(a.ID) }
