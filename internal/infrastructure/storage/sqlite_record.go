package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
)

type sqliteRecordRepository struct {
	db *sql.DB
}

// NewSQLiteRecordRepository SQLite backed catalog. The returned value also
// implements io.Closer.
func NewSQLiteRecordRepository(dbPath string) (repository.RecordRepository, error) {
	if dbPath == "" {
		return nil, errors.New("db path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := createRecordSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteRecordRepository{db: db}, nil
}

func createRecordSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS records (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	date TEXT NOT NULL,
	price REAL NOT NULL,
	rating REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_position ON records (position);
CREATE TABLE IF NOT EXISTS catalog_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close releases the database handle
func (s *sqliteRecordRepository) Close() error {
	return s.db.Close()
}

func saveRecordsTx(ctx context.Context, tx *sql.Tx, records []entity.Record) error {
	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM records`).Scan(&next); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO records (id, position, name, category, date, price, rating)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	category = excluded.category,
	date = excluded.date,
	price = excluded.price,
	rating = excluded.rating`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.ID, next, r.Name, r.Category, r.Date, r.Price, r.Rating); err != nil {
			return fmt.Errorf("failed to save record %s: %w", r.ID, err)
		}
		next++
	}
	return nil
}

func (s *sqliteRecordRepository) allRecords(ctx context.Context) ([]entity.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, date, price, rating FROM records ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entity.Record, 0)
	for rows.Next() {
		var r entity.Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Category, &r.Date, &r.Price, &r.Rating); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpdateCatalog replaces the whole catalog
func (s *sqliteRecordRepository) UpdateCatalog(ctx context.Context, catalog entity.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		tx.Rollback()
		return err
	}
	if err := saveRecordsTx(ctx, tx, catalog.Records); err != nil {
		tx.Rollback()
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO catalog_meta (key, value) VALUES ('source', ?)`, catalog.Source)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetCatalog returns ErrEmptyCatalog when nothing was loaded
func (s *sqliteRecordRepository) GetCatalog(ctx context.Context) (*entity.Catalog, error) {
	var source string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM catalog_meta WHERE key = 'source'`).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrEmptyCatalog
	}
	if err != nil {
		return nil, err
	}

	records, err := s.allRecords(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.Catalog{Records: records, Source: source}, nil
}
