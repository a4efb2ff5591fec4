// Package cli prints a one-shot rendering of the catalog table.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yourusername/catalog-table/internal/delivery"
	"github.com/yourusername/catalog-table/internal/domain/entity"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// Print writes visible as a bordered table followed by a count line.
// total is the size of the working set the rows were filtered from; source,
// when set, names where that set was loaded from.
func Print(w io.Writer, visible []entity.Record, total int, source string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(delivery.Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if len(visible) == 0 {
		t.Row(delivery.NoDataText)
	} else {
		t.Rows(delivery.Rows(visible)...)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	footer := fmt.Sprintf("%d of %d records", len(visible), total)
	if source != "" {
		footer += " · " + source
	}
	_, err := fmt.Fprintln(w, footerStyle.Render(footer))
	return err
}
