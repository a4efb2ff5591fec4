package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
	"github.com/yourusername/catalog-table/internal/logging"
)

// CatalogUseCase loads the seed catalog and writes view snapshots
type CatalogUseCase interface {
	// Import parses a catalog file and replaces the stored catalog with it
	Import(ctx context.Context, filePath string) (int, error)

	// ImportBytes same as Import for content already in memory
	ImportBytes(ctx context.Context, data []byte, filename string) (int, error)

	// Seed the stored catalog: records ready to hand to a TableController and
	// the file they were imported from
	Seed(ctx context.Context) (*entity.Catalog, error)

	// Export writes records to filePath
	Export(ctx context.Context, records []entity.Record, filePath string) error

	// Summary short per-category description of the stored catalog
	Summary(ctx context.Context) (string, error)
}

type catalogUseCase struct {
	recordRepo repository.RecordRepository
	parsers    map[string]repository.CatalogParser // key: lower-case extension with dot
	exporter   repository.CatalogExporter
	logger     *log.Logger
}

// NewCatalogUseCase parsers maps file extensions (".xlsx", ".json", ...) to parsers
func NewCatalogUseCase(
	recordRepo repository.RecordRepository,
	parsers map[string]repository.CatalogParser,
	exporter repository.CatalogExporter,
	logger *log.Logger,
) CatalogUseCase {
	if logger == nil {
		logger = logging.Discard()
	}
	normalized := make(map[string]repository.CatalogParser, len(parsers))
	for ext, p := range parsers {
		normalized[strings.ToLower(ext)] = p
	}
	return &catalogUseCase{
		recordRepo: recordRepo,
		parsers:    normalized,
		exporter:   exporter,
		logger:     logger,
	}
}

func (u *catalogUseCase) parserFor(filename string) (repository.CatalogParser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	p, ok := u.parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", repository.ErrUnsupportedCatalog, filename)
	}
	return p, nil
}

// Import parses a catalog file and replaces the stored catalog with it
func (u *catalogUseCase) Import(ctx context.Context, filePath string) (int, error) {
	p, err := u.parserFor(filePath)
	if err != nil {
		return 0, err
	}
	records, err := p.ParseRecords(ctx, filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return u.store(ctx, records, filePath)
}

// ImportBytes same as Import for content already in memory
func (u *catalogUseCase) ImportBytes(ctx context.Context, data []byte, filename string) (int, error) {
	p, err := u.parserFor(filename)
	if err != nil {
		return 0, err
	}
	records, err := p.ParseRecordsFromBytes(ctx, data, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return u.store(ctx, records, filename)
}

func (u *catalogUseCase) store(ctx context.Context, records []entity.Record, source string) (int, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("%s: %w", source, repository.ErrEmptyCatalog)
	}
	catalog := entity.Catalog{Records: records, Source: source}
	if err := u.recordRepo.UpdateCatalog(ctx, catalog); err != nil {
		return 0, fmt.Errorf("failed to store catalog: %w", err)
	}
	u.logger.Info("catalog imported", "source", source, "records", len(records))
	return len(records), nil
}

// Seed the stored catalog and its import source
func (u *catalogUseCase) Seed(ctx context.Context) (*entity.Catalog, error) {
	catalog, err := u.recordRepo.GetCatalog(ctx)
	if errors.Is(err, repository.ErrEmptyCatalog) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(catalog.Records) == 0 {
		return nil, repository.ErrEmptyCatalog
	}
	return catalog, nil
}

// Export writes records to filePath
func (u *catalogUseCase) Export(ctx context.Context, records []entity.Record, filePath string) error {
	if u.exporter == nil {
		return errors.New("no exporter configured")
	}
	if err := u.exporter.Export(ctx, records, filePath); err != nil {
		return fmt.Errorf("failed to export %d records: %w", len(records), err)
	}
	u.logger.Info("view exported", "path", filePath, "records", len(records))
	return nil
}

// Summary short per-category description of the stored catalog
func (u *catalogUseCase) Summary(ctx context.Context) (string, error) {
	catalog, err := u.Seed(ctx)
	if err != nil {
		return "", err
	}
	records := catalog.Records

	counts := make(map[string]int)
	for _, r := range records {
		counts[r.CategoryKey()]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d records in %d categories\n", len(records), len(keys)))
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", k, counts[k]))
	}
	return sb.String(), nil
}
