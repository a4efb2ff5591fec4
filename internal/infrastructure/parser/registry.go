package parser

import (
	"github.com/charmbracelet/log"

	"github.com/yourusername/catalog-table/internal/domain/repository"
)

// ByExtension every supported catalog format keyed by file extension
func ByExtension(logger *log.Logger) map[string]repository.CatalogParser {
	jsonP := NewJSONParser(logger)
	yamlP := NewYAMLParser(logger)
	return map[string]repository.CatalogParser{
		".xlsx":  NewExcelParser(logger),
		".json":  jsonP,
		".jsonc": jsonP,
		".yaml":  yamlP,
		".yml":   yamlP,
	}
}
