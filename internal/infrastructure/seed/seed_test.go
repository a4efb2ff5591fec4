package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/catalog-table/internal/infrastructure/parser"
	"github.com/yourusername/catalog-table/internal/usecase"
)

func TestDefaultCatalogParses(t *testing.T) {
	records, err := parser.NewYAMLParser(nil).ParseRecordsFromBytes(context.Background(), DefaultCatalog(), DefaultName)
	require.NoError(t, err)
	require.Len(t, records, 10)

	assert.Equal(t, "Laptop", records[0].Name)
	assert.Equal(t,
		[]string{"electronics", "furniture", "appliances", "books", "apparel"},
		usecase.CategoryIndex(records))
}

func TestDefaultCatalogIsCopied(t *testing.T) {
	a := DefaultCatalog()
	a[0] = 'X'
	assert.NotEqual(t, a[0], DefaultCatalog()[0])
}
