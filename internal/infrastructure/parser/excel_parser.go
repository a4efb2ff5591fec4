package parser

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
	"github.com/yourusername/catalog-table/internal/logging"
)

// default column order for sheets without a header row
var defaultColumns = map[string]int{
	"name":     0,
	"category": 1,
	"date":     2,
	"price":    3,
	"rating":   4,
}

type excelParser struct {
	logger *log.Logger
}

// NewExcelParser reads records from the first sheet of an .xlsx workbook
func NewExcelParser(logger *log.Logger) repository.CatalogParser {
	if logger == nil {
		logger = logging.Discard()
	}
	return &excelParser{logger: logger}
}

// ParseRecords reads a workbook from disk
func (e *excelParser) ParseRecords(ctx context.Context, filePath string) ([]entity.Record, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f, filePath)
}

// ParseRecordsFromBytes parses a workbook already in memory
func (e *excelParser) ParseRecordsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f, filename)
}

func (e *excelParser) parseExcelFile(f *excelize.File, source string) ([]entity.Record, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	// Raw values keep date cells as serial numbers instead of locale formatted text
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	columnMap := defaultColumns
	startRow := 0
	if e.hasHeader(rows[0]) {
		columnMap = e.mapColumns(rows[0])
		startRow = 1
	}
	e.logger.Debug("excel column mapping", "source", source, "columns", columnMap, "rows", len(rows))

	var records []entity.Record
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		r, err := e.rowToRecord(row, columnMap)
		if err != nil {
			e.logger.Warn("skipping row", "source", source, "row", i+1, "err", err)
			continue
		}
		records = append(records, r)
	}

	records = normalizeRecords(records, source, e.logger)
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in excel file (%d rows read)", len(rows)-startRow)
	}
	return records, nil
}

// hasHeader the first row is data when its price column parses as a number
func (e *excelParser) hasHeader(first []string) bool {
	priceCol := defaultColumns["price"]
	if len(first) <= priceCol {
		return true
	}
	_, err := parsePrice(first[priceCol])
	return err != nil
}

// mapColumns header row to field -> column index
func (e *excelParser) mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))

		switch {
		case colName == "id" || colName == "sku":
			columnMap["id"] = i
		// "product"/"item" prefix other headers ("Product Category"), so the
		// name keywords are checked last
		case contains(colName, "category", "type", "group"):
			columnMap["category"] = i
		case contains(colName, "date", "added", "created"):
			columnMap["date"] = i
		case contains(colName, "price", "cost", "amount", "$"):
			columnMap["price"] = i
		case contains(colName, "rating", "score", "stars"):
			columnMap["rating"] = i
		case contains(colName, "name", "product", "item", "title"):
			columnMap["name"] = i
		}
	}

	for field, idx := range defaultColumns {
		if _, ok := columnMap[field]; !ok && idx < len(header) {
			e.logger.Warn("column not found in header, using default position", "field", field, "column", idx)
			columnMap[field] = idx
		}
	}
	return columnMap
}

func (e *excelParser) rowToRecord(row []string, columnMap map[string]int) (entity.Record, error) {
	cell := func(field string) string {
		idx, ok := columnMap[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	price, err := parsePrice(cell("price"))
	if err != nil {
		return entity.Record{}, err
	}
	rating, err := parseRating(cell("rating"))
	if err != nil {
		return entity.Record{}, err
	}

	return entity.Record{
		ID:       cell("id"),
		Name:     cell("name"),
		Category: cell("category"),
		Date:     excelDate(cell("date")),
		Price:    price,
		Rating:   rating,
	}, nil
}

// excelDate turns a date serial into YYYY-MM-DD; text cells are returned as is
func excelDate(raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}
