package storage

import (
	"context"
	"sync"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
)

type memoryRecordRepository struct {
	mu      sync.RWMutex
	records []entity.Record
	index   map[string]int // key: record ID, value: position in records
	source  string
	loaded  bool
}

// NewMemoryRecordRepository in-memory record repository
func NewMemoryRecordRepository() repository.RecordRepository {
	return &memoryRecordRepository{
		index: make(map[string]int),
	}
}

// UpdateCatalog replaces the whole catalog
func (m *memoryRecordRepository) UpdateCatalog(ctx context.Context, catalog entity.Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	m.index = make(map[string]int)
	for _, r := range catalog.Records {
		if pos, ok := m.index[r.ID]; ok {
			m.records[pos] = r
			continue
		}
		m.index[r.ID] = len(m.records)
		m.records = append(m.records, r)
	}
	m.source = catalog.Source
	m.loaded = true
	return nil
}

// GetCatalog returns ErrEmptyCatalog when nothing was loaded
func (m *memoryRecordRepository) GetCatalog(ctx context.Context) (*entity.Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.loaded {
		return nil, repository.ErrEmptyCatalog
	}
	return &entity.Catalog{Records: entity.CloneRecords(m.records), Source: m.source}, nil
}
