package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/catalog-table/internal/domain/entity"
	"github.com/yourusername/catalog-table/internal/domain/repository"
)

// SheetName sheet that receives the exported rows
const SheetName = "Records"

var header = []any{"ID", "Name", "Category", "Date", "Price", "Rating"}

type excelExporter struct{}

// NewExcelExporter writes records as an .xlsx workbook readable by the excel parser
func NewExcelExporter() repository.CatalogExporter {
	return &excelExporter{}
}

// Export writes a header row followed by one row per record, in order
func (e *excelExporter) Export(ctx context.Context, records []entity.Record, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.ID, r.Name, r.Category, r.Date, r.Price, r.Rating}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
