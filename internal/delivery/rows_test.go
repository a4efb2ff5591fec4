package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/catalog-table/internal/domain/entity"
)

func TestRow(t *testing.T) {
	r := entity.Record{ID: "1", Name: "Laptop", Category: "Electronics", Date: "2023-01-01", Price: 1200, Rating: 4.5}
	assert.Equal(t, []string{"Laptop", "Electronics", "2023-01-01", "1200/-", "4.5"}, Row(r))
	assert.Len(t, Row(r), len(Headers))
}

func TestRowsEmpty(t *testing.T) {
	assert.NotNil(t, Rows(nil))
	assert.Empty(t, Rows(nil))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "99.5/-", FormatPrice(99.5))
	assert.Equal(t, "500/-", FormatPrice(500))
}
