package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

// MaxRating upper bound of the rating scale
const MaxRating = 5.0

// normalizeRecords trims text fields, assigns IDs to records that lack one and
// drops records that cannot be shown (no name, negative price, rating off scale).
// Dates are kept verbatim; the table compares them as text.
func normalizeRecords(in []entity.Record, source string, logger *log.Logger) []entity.Record {
	out := make([]entity.Record, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for i, r := range in {
		r.ID = strings.TrimSpace(r.ID)
		r.Name = strings.TrimSpace(r.Name)
		r.Category = strings.TrimSpace(r.Category)
		r.Date = strings.TrimSpace(r.Date)

		if err := validateRecord(r); err != nil {
			logger.Warn("skipping record", "source", source, "index", i, "err", err)
			continue
		}
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		if _, dup := seen[r.ID]; dup {
			newID := uuid.New().String()
			logger.Warn("duplicate record id, assigning a new one", "source", source, "id", r.ID, "new_id", newID)
			r.ID = newID
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}

func validateRecord(r entity.Record) error {
	switch {
	case r.Name == "":
		return fmt.Errorf("missing name")
	case r.Price < 0:
		return fmt.Errorf("negative price %v", r.Price)
	case r.Rating < 0 || r.Rating > MaxRating:
		return fmt.Errorf("rating %v outside 0-%v", r.Rating, MaxRating)
	}
	return nil
}

// parsePrice accepts "1,200", "$1200", "1200/-" and similar
func parsePrice(priceStr string) (float64, error) {
	priceStr = strings.ToLower(strings.TrimSpace(priceStr))
	if priceStr == "" {
		return 0, fmt.Errorf("empty price")
	}

	priceStr = strings.TrimSuffix(priceStr, "/-")
	for _, junk := range []string{",", " ", "$", "€", "£", "₹", "usd", "eur", "inr", "rs."} {
		priceStr = strings.ReplaceAll(priceStr, junk, "")
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price format: %s", priceStr)
	}
	return price, nil
}

func parseRating(ratingStr string) (float64, error) {
	ratingStr = strings.TrimSpace(ratingStr)
	if ratingStr == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating format: %s", ratingStr)
	}
	return v, nil
}
