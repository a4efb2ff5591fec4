package repository

import (
	"context"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

// RecordRepository holds the seed catalog. Implementations return copies, never
// slices that alias their internal state.
type RecordRepository interface {
	// UpdateCatalog replaces the whole catalog. Records sharing an ID collapse
	// into the first position with the last value.
	UpdateCatalog(ctx context.Context, catalog entity.Catalog) error

	// GetCatalog records in insertion order plus the source they were imported
	// from; ErrEmptyCatalog when nothing was loaded
	GetCatalog(ctx context.Context) (*entity.Catalog, error)
}
