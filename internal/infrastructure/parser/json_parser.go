package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tidwall/jsonc"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
	"github.com/yourusername/catalog-table/internal/logging"
)

type jsonParser struct {
	logger *log.Logger
}

// NewJSONParser reads a JSON array of records. Comments and trailing commas are allowed.
func NewJSONParser(logger *log.Logger) repository.CatalogParser {
	if logger == nil {
		logger = logging.Discard()
	}
	return &jsonParser{logger: logger}
}

// ParseRecords reads a JSON file from disk
func (p *jsonParser) ParseRecords(ctx context.Context, filePath string) ([]entity.Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read json catalog: %w", err)
	}
	return p.ParseRecordsFromBytes(ctx, data, filePath)
}

// ParseRecordsFromBytes parses JSON content; both a bare array and {"records": [...]} are accepted
func (p *jsonParser) ParseRecordsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Record, error) {
	clean := jsonc.ToJSON(data)

	var records []entity.Record
	if err := json.Unmarshal(clean, &records); err != nil {
		var wrapped struct {
			Records []entity.Record `json:"records"`
		}
		if werr := json.Unmarshal(clean, &wrapped); werr != nil {
			return nil, fmt.Errorf("invalid json catalog %s: %w", filename, err)
		}
		records = wrapped.Records
	}

	records = normalizeRecords(records, filename, p.logger)
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in %s", filename)
	}
	return records, nil
}
