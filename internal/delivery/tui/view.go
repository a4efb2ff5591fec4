package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/catalog-table/internal/delivery"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	if m.ctrl.DropdownVisible() {
		b.WriteString(m.renderDropdown())
		b.WriteString("\n")
	}
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderFilterBar() string {
	f := m.ctrl.Filter()

	field := func(label, value string, active bool) string {
		style := valueStyle
		if active {
			style = activeStyle
		}
		return labelStyle.Render(label+": ") + style.Render(value)
	}

	category := "Category ▾"
	if n := len(f.Categories); n > 0 {
		category = fmt.Sprintf("Category ▾ (%d)", n)
	}
	if m.ctrl.DropdownVisible() {
		category = strings.Replace(category, "▾", "▴", 1)
	}

	parts := []string{
		field("Name", m.nameInput.View(), m.focus == focusName),
		field("Date", m.dateInput.View(), m.focus == focusDate),
		field("Price", f.Price.Label(), false),
		field("Rating", f.MinRating.Label(), false),
		field("", category, m.focus == focusCategories),
	}
	if f.IsDefault() {
		parts = append(parts, labelStyle.Render("no filters"))
	} else {
		parts = append(parts, activeStyle.Render("x to reset"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m Model) renderDropdown() string {
	categories := m.ctrl.Categories()
	if len(categories) == 0 {
		return dropdownStyle.Render(labelStyle.Render("no categories"))
	}

	f := m.ctrl.Filter()
	lines := make([]string, 0, len(categories))
	for i, c := range categories {
		box := "[ ]"
		if f.HasCategory(c) {
			box = "[x]"
		}
		line := box + " " + c
		if i == m.categoryCursor && m.focus == focusCategories {
			line = activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return dropdownStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTable() string {
	if len(m.visible) > 0 {
		return frameStyle.Render(m.table.View())
	}

	// Header only, followed by the empty marker row
	header := m.headerView()
	width := lipgloss.Width(header)
	return frameStyle.Render(header) + "\n" + emptyRowStyle.Width(width).Render(delivery.NoDataText)
}

// headerView column titles at the table's current widths
func (m Model) headerView() string {
	header := tableStyles().Header
	cells := make([]string, 0, len(m.table.Columns()))
	for _, col := range m.table.Columns() {
		if col.Width <= 0 {
			continue
		}
		cell := lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true).Render(col.Title)
		cells = append(cells, header.Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderStatus() string {
	total := len(m.ctrl.Records())
	line := fmt.Sprintf("%d of %s", len(m.visible), pluralRecords(total))
	if m.opts.Source != "" {
		line += " · " + m.opts.Source
	}
	if m.status != "" {
		if m.statusErr {
			return statusStyle.Render(line+" · ") + errorStyle.Render(m.status)
		}
		line += " · " + m.status
	}
	return statusStyle.Render(line)
}

func pluralRecords(n int) string {
	if n == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", n)
}
