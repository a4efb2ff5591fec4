package main

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/usecase"
)

// filterFlags the one-shot equivalent of the interactive filter bar
type filterFlags struct {
	name       string
	date       string
	price      string
	rating     string
	categories []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "case-insensitive name substring")
	fs.StringVar(&f.date, "date", "", "exact date, DD-MM-YYYY")
	fs.StringVar(&f.price, "price", "", "any, high (>= 500) or low (< 500)")
	fs.StringVar(&f.rating, "rating", "", "minimum rating: any, 4.5, 4, 3.5, 3")
	fs.StringSliceVar(&f.categories, "category", nil, "category to include; repeatable, any case")
}

// actions translates the flags into table actions. Unknown price or rating
// values are logged and leave that filter unset.
func (f *filterFlags) actions(logger *log.Logger) []usecase.Action {
	var acts []usecase.Action

	if f.name != "" {
		acts = append(acts, usecase.ChangeName{Text: f.name})
	}
	if f.date != "" {
		acts = append(acts, usecase.ChangeDate{Text: f.date})
	}

	price := entity.ParsePriceBucket(f.price)
	if price == entity.PriceAny && !isAny(f.price) {
		logger.Warn("unknown price filter, showing any price", "value", f.price)
	}
	acts = append(acts, usecase.ChangePrice{Bucket: price})

	rating := entity.ParseRatingThreshold(f.rating)
	switch {
	case rating.IsAny() && !isAny(f.rating):
		logger.Warn("unknown rating filter, showing any rating", "value", f.rating)
	case !rating.IsAny():
		logger.Debug("rating filter", "min", rating.Value())
	}
	acts = append(acts, usecase.ChangeRating{Threshold: rating})

	seen := make(map[string]bool, len(f.categories))
	for _, c := range f.categories {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		acts = append(acts, usecase.ToggleCategory{Key: key})
	}
	return acts
}

func (f *filterFlags) apply(ctrl *usecase.TableController, logger *log.Logger) {
	for _, a := range f.actions(logger) {
		ctrl.Dispatch(a)
	}
}

func isAny(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "any")
}
