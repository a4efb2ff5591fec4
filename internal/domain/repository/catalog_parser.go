package repository

import (
	"context"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

// CatalogParser reads seed records from a catalog file
type CatalogParser interface {
	// ParseRecords reads a file from disk
	ParseRecords(ctx context.Context, filePath string) ([]entity.Record, error)

	// ParseRecordsFromBytes parses already loaded content; filename is used in errors only
	ParseRecordsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Record, error)
}

// CatalogExporter writes a snapshot of records somewhere
type CatalogExporter interface {
	Export(ctx context.Context, records []entity.Record, filePath string) error
}
