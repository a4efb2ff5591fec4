package parser

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
	"github.com/yourusername/catalog-table/internal/logging"
)

type yamlParser struct {
	logger *log.Logger
}

// NewYAMLParser reads records from a YAML document with a top-level "records" list
func NewYAMLParser(logger *log.Logger) repository.CatalogParser {
	if logger == nil {
		logger = logging.Discard()
	}
	return &yamlParser{logger: logger}
}

// ParseRecords reads a YAML file from disk
func (p *yamlParser) ParseRecords(ctx context.Context, filePath string) ([]entity.Record, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read yaml catalog: %w", err)
	}
	return p.ParseRecordsFromBytes(ctx, data, filePath)
}

// ParseRecordsFromBytes parses YAML content
func (p *yamlParser) ParseRecordsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Record, error) {
	var doc struct {
		Records []entity.Record `yaml:"records"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml catalog %s: %w", filename, err)
	}

	records := normalizeRecords(doc.Records, filename, p.logger)
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in %s", filename)
	}
	return records, nil
}
