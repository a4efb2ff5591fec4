package parser

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelParserWithHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"ID", "Product Name", "Category", "Date", "Price", "Rating"},
		{"1", "Laptop", "Electronics", "2023-01-01", 1200, 4.5},
		{"2", "Chair", "Furniture", "2023-02-01", "150/-", 3.8},
		{"", "", "", "", "", ""},
		{"3", "Broken", "Furniture", "2023-02-01", "n/a", 3},
	})

	records, err := NewExcelParser(nil).ParseRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, entity.Record{ID: "1", Name: "Laptop", Category: "Electronics", Date: "2023-01-01", Price: 1200, Rating: 4.5}, records[0])
	assert.Equal(t, 150.0, records[1].Price)
}

func TestExcelParserProductPrefixedHeaders(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Product Category", "Product Name", "Product Price", "Date Added", "Item Rating"},
		{"Electronics", "Laptop", 1200, "2023-01-01", 4.5},
	})

	records, err := NewExcelParser(nil).ParseRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Laptop", r.Name)
	assert.Equal(t, "Electronics", r.Category)
	assert.Equal(t, 1200.0, r.Price)
	assert.Equal(t, "2023-01-01", r.Date)
	assert.Equal(t, 4.5, r.Rating)
}

func TestExcelParserWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Laptop", "Electronics", "2023-01-01", 1200, 4.5},
		{"Chair", "Furniture", "2023-02-01", 150, 3.8},
	})

	records, err := NewExcelParser(nil).ParseRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Chair", records[1].Name)
	assert.NotEmpty(t, records[0].ID, "missing ids are generated")
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestExcelParserDateSerial(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Category", "Date", "Price", "Rating"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Laptop", "Electronics", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1200, 4.5}))
	path := filepath.Join(t.TempDir(), "dates.xlsx")
	require.NoError(t, f.SaveAs(path))

	records, err := NewExcelParser(nil).ParseRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2023-01-01", records[0].Date)
}

func TestExcelParserFromBytes(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "Category", "Date", "Price", "Rating"},
		{"Laptop", "Electronics", "2023-01-01", 1200, 4.5},
	})
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := NewExcelParser(nil).ParseRecordsFromBytes(context.Background(), data, "upload.xlsx")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = NewExcelParser(nil).ParseRecordsFromBytes(context.Background(), []byte("not a zip"), "bad.xlsx")
	assert.Error(t, err)
}

func TestJSONParser(t *testing.T) {
	data := []byte(`[
		// seed catalog
		{"id": "1", "name": "Laptop", "category": "Electronics", "date": "2023-01-01", "price": 1200, "rating": 4.5},
		{"id": "2", "name": "Chair", "category": "Furniture", "date": "2023-02-01", "price": 150, "rating": 3.8},
		{"id": "3", "name": "", "category": "Furniture", "date": "2023-02-01", "price": 150, "rating": 3.8},
	]`)

	records, err := NewJSONParser(nil).ParseRecordsFromBytes(context.Background(), data, "seed.jsonc")
	require.NoError(t, err)
	require.Len(t, records, 2, "nameless record is skipped")
	assert.Equal(t, "Laptop", records[0].Name)
}

func TestJSONParserWrappedDocument(t *testing.T) {
	data := []byte(`{"records": [{"name": "Pen", "category": "Stationery", "date": "2023-03-01", "price": 2, "rating": 4}]}`)

	records, err := NewJSONParser(nil).ParseRecordsFromBytes(context.Background(), data, "seed.json")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)

	_, err = NewJSONParser(nil).ParseRecordsFromBytes(context.Background(), []byte(`{`), "bad.json")
	assert.Error(t, err)
}

func TestYAMLParser(t *testing.T) {
	data := []byte(`
records:
  - id: "1"
    name: Laptop
    category: Electronics
    date: 2023-01-01
    price: 1200
    rating: 4.5
  - id: "1"
    name: Duplicate
    category: Electronics
    date: "2023-01-02"
    price: 10
    rating: 2
  - id: "9"
    name: Overrated
    category: Electronics
    date: "2023-01-02"
    price: 10
    rating: 7
`)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	records, err := NewYAMLParser(nil).ParseRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2023-01-01", records[0].Date)
	assert.NotEqual(t, "1", records[1].ID, "duplicate id is replaced")
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1200", 1200, false},
		{"1,200", 1200, false},
		{"$ 99.5", 99.5, false},
		{"500/-", 500, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePrice(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByExtension(t *testing.T) {
	parsers := ByExtension(nil)
	for _, ext := range []string{".xlsx", ".json", ".jsonc", ".yaml", ".yml"} {
		assert.Contains(t, parsers, ext)
	}
}
