// Package render turns row sets into aligned text tables
package render

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/staffdesk/staffdesk/internal/cli/styles"
)

// Placeholder is shown in place of a missing optional value
const Placeholder = "n/a"

// Table renders rows under headers. Every row must have len(headers) cells.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.HeaderStyle
			}
			return styles.CellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.String()
}

// OrPlaceholder dereferences an optional string, using Placeholder for nil or empty
func OrPlaceholder(value *string) string {
	if value == nil || *value == "" {
		return Placeholder
	}
	return *value
}

// TextOrPlaceholder returns text, or Placeholder when text is empty
func TextOrPlaceholder(text string) string {
	if text == "" {
		return Placeholder
	}
	return text
}
