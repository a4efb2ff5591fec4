package entity

import (
	"maps"
	"math"
	"strconv"
	"strings"
)

// HighPriceThreshold prices at or above it fall in the High bucket
const HighPriceThreshold = 500.0

// PriceBucket coarse price selector
type PriceBucket int

const (
	PriceAny PriceBucket = iota
	PriceHigh
	PriceLow
)

// PriceBuckets in the order the UI cycles through them
var PriceBuckets = []PriceBucket{PriceAny, PriceHigh, PriceLow}

func (b PriceBucket) String() string {
	switch b {
	case PriceHigh:
		return "High"
	case PriceLow:
		return "Low"
	default:
		return "Any"
	}
}

// Label text shown in the price selector
func (b PriceBucket) Label() string {
	switch b {
	case PriceHigh:
		return "High (>= 500/-)"
	case PriceLow:
		return "Low (< 500/-)"
	default:
		return "Any Price"
	}
}

// Matches reports whether price falls into the bucket. Unknown buckets behave like PriceAny.
func (b PriceBucket) Matches(price float64) bool {
	switch b {
	case PriceHigh:
		return price >= HighPriceThreshold
	case PriceLow:
		return price < HighPriceThreshold
	default:
		return true
	}
}

// ParsePriceBucket maps UI input to a bucket. Unrecognized input falls back to PriceAny.
func ParsePriceBucket(s string) PriceBucket {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriceHigh
	case "low":
		return PriceLow
	default:
		return PriceAny
	}
}

// RatingThreshold either no constraint or a minimum rating
type RatingThreshold struct {
	set bool
	min float64
}

// AnyRating threshold that accepts every record
func AnyRating() RatingThreshold {
	return RatingThreshold{}
}

// MinRating threshold that accepts ratings >= v
func MinRating(v float64) RatingThreshold {
	return RatingThreshold{set: true, min: v}
}

// RatingChoices the selector options, Any first
var RatingChoices = []RatingThreshold{
	AnyRating(),
	MinRating(4.5),
	MinRating(4),
	MinRating(3.5),
	MinRating(3),
}

// IsAny reports whether the threshold is unset
func (t RatingThreshold) IsAny() bool {
	return !t.set
}

// Value minimum rating; meaningless when IsAny
func (t RatingThreshold) Value() float64 {
	return t.min
}

// Matches reports whether rating satisfies the threshold
func (t RatingThreshold) Matches(rating float64) bool {
	return !t.set || rating >= t.min
}

func (t RatingThreshold) String() string {
	if !t.set {
		return "Any"
	}
	return strconv.FormatFloat(t.min, 'f', -1, 64)
}

// Label text shown in the rating selector
func (t RatingThreshold) Label() string {
	if !t.set {
		return "Any Rating"
	}
	return t.String() + "+"
}

// ParseRatingThreshold maps UI input ("Any", "4.5", ...) to a threshold.
// Empty, "Any", non-numeric, non-finite and negative input all fall back to AnyRating.
func ParseRatingThreshold(s string) RatingThreshold {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "any") {
		return AnyRating()
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "+"), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return AnyRating()
	}
	return MinRating(v)
}

// FilterSpec the user's current filter intent
type FilterSpec struct {
	NameQuery  string
	Categories map[string]struct{} // case-folded keys
	DateQuery  string              // DD-MM-YYYY
	Price      PriceBucket
	MinRating  RatingThreshold
}

// DefaultFilterSpec all predicates unset
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Categories: map[string]struct{}{},
		Price:      PriceAny,
		MinRating:  AnyRating(),
	}
}

// HasCategory reports whether key is selected
func (f FilterSpec) HasCategory(key string) bool {
	_, ok := f.Categories[strings.ToLower(key)]
	return ok
}

// IsDefault reports whether no predicate is active
func (f FilterSpec) IsDefault() bool {
	return f.NameQuery == "" &&
		len(f.Categories) == 0 &&
		f.DateQuery == "" &&
		f.Price == PriceAny &&
		f.MinRating.IsAny()
}

// Clone deep copy; the category set is not shared
func (f FilterSpec) Clone() FilterSpec {
	out := f
	out.Categories = make(map[string]struct{}, len(f.Categories))
	maps.Copy(out.Categories, f.Categories)
	return out
}
