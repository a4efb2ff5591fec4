package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/catalog-table/internal/delivery"
	"github.com/yourusername/catalog-table/internal/infrastructure/parser"
	"github.com/yourusername/catalog-table/internal/logging"
	"github.com/yourusername/catalog-table/internal/usecase"
)

// executeCommand runs a fresh root command with args and returns captured output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

const catalogJSON = `[
	{"id": "a", "name": "Kettle", "category": "Appliances", "date": "2024-05-01", "price": 40, "rating": 4.2},
	{"id": "b", "name": "Sofa", "category": "Furniture", "date": "2024-05-02", "price": 900, "rating": 3.1},
	{"id": "c", "name": "Lamp", "category": "furniture", "date": "2024-05-03", "price": 35, "rating": 4.8}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"browse", "list", "import", "export"} {
		assert.Contains(t, names, want)
	}
}

func TestListBuiltInCatalog(t *testing.T) {
	out, err := executeCommand(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Laptop")
	assert.Contains(t, out, "Bookshelf")
	assert.Contains(t, out, "10 of 10 records · default_catalog.yaml")
}

func TestListFilters(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "price and category",
			args:     []string{"--price", "high", "--category", "FURNITURE"},
			contains: []string{"Desk", "Bookshelf", "2 of 10 records"},
			excludes: []string{"Chair", "Laptop"},
		},
		{
			name:     "date in display form",
			args:     []string{"--date", "01-01-2023"},
			contains: []string{"Laptop", "1 of 10 records"},
			excludes: []string{"Desk"},
		},
		{
			name:     "name and rating",
			args:     []string{"--name", "smart", "--rating", "4"},
			contains: []string{"Smartphone", "1 of 10 records"},
			excludes: []string{"Smartwatch"},
		},
		{
			name:     "repeated category",
			args:     []string{"--category", "electronics", "--category", "Electronics", "--category", "books"},
			contains: []string{"Novel", "Headphones", "5 of 10 records"},
		},
		{
			name:     "nothing matches",
			args:     []string{"--name", "zeppelin"},
			contains: []string{delivery.NoDataText, "0 of 10 records"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, append([]string{"list"}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestListUnknownRatingFailsOpen(t *testing.T) {
	out, err := executeCommand(t, "list", "--rating", "excellent", "--price", "cheap")

	require.NoError(t, err)
	assert.Contains(t, out, "unknown rating filter")
	assert.Contains(t, out, "unknown price filter")
	assert.Contains(t, out, "10 of 10 records")
}

func TestListNonFiniteRatingFailsOpen(t *testing.T) {
	for _, rating := range []string{"NaN", "Inf"} {
		t.Run(rating, func(t *testing.T) {
			out, err := executeCommand(t, "list", "--rating", rating)
			require.NoError(t, err)
			assert.Contains(t, out, "unknown rating filter")
			assert.Contains(t, out, "10 of 10 records")
		})
	}
}

func TestListLogsRatingThreshold(t *testing.T) {
	out, err := executeCommand(t, "list", "--rating", "4.5+", "--log-level", "debug")

	require.NoError(t, err)
	assert.Contains(t, out, "rating filter")
	assert.Contains(t, out, "min=4.5")
}

func TestListSeedFile(t *testing.T) {
	seed := writeFile(t, "catalog.json", catalogJSON)

	out, err := executeCommand(t, "list", "--seed", seed, "--category", "furniture", "--price", "low")
	require.NoError(t, err)
	assert.Contains(t, out, "Lamp")
	assert.NotContains(t, out, "Sofa")
	assert.Contains(t, out, "1 of 3 records")
}

func TestImportThenListFromDatabase(t *testing.T) {
	seed := writeFile(t, "catalog.json", catalogJSON)
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, err := executeCommand(t, "import", seed, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 records")
	assert.Contains(t, out, "furniture: 2")

	out, err = executeCommand(t, "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Kettle")
	assert.Contains(t, out, "3 of 3 records")
	assert.Contains(t, out, "imported from "+seed, "status names the original import file")
}

func TestImportRequiresDatabase(t *testing.T) {
	seed := writeFile(t, "catalog.json", catalogJSON)

	_, err := executeCommand(t, "import", seed)
	assert.ErrorContains(t, err, "needs a database")
}

func TestListEmptyDatabase(t *testing.T) {
	_, err := executeCommand(t, "list", "--db", filepath.Join(t.TempDir(), "empty.db"))
	assert.ErrorContains(t, err, "run import first")
}

func TestExportFilteredView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cheap.xlsx")

	out, err := executeCommand(t, "export", "--price", "low", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 6 of 10 records")

	records, err := parser.NewExcelParser(nil).ParseRecords(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, records, 6)
	for _, r := range records {
		assert.Less(t, r.Price, 500.0)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCommand(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}

func TestFilterFlagActions(t *testing.T) {
	f := filterFlags{
		name:       "lap",
		price:      "HIGH",
		rating:     "4.5+",
		categories: []string{"Electronics", " electronics ", ""},
	}

	acts := f.actions(logging.Discard())

	assert.Contains(t, acts, usecase.Action(usecase.ChangeName{Text: "lap"}))
	assert.Len(t, acts, 4, "name, price, rating and one category")

	ctrl := usecase.NewTableController(nil, nil)
	f.apply(ctrl, logging.Discard())
	spec := ctrl.Filter()
	assert.True(t, spec.HasCategory("electronics"))
	assert.Equal(t, "4.5+", spec.MinRating.Label())
}
