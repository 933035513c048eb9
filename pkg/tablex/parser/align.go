package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// ErrMalformedHeader indicates a header row with zero usable column labels.
var ErrMalformedHeader = errors.New("header row has no usable column labels")

// Columns derives the column schema from a header row: non-empty cells in
// left-to-right order, labels trimmed, duplicates disambiguated with an
// occurrence suffix ("Total", "Total_2"). A generated label that collides
// with a literal one bumps the counter until it is unique, so the label set
// always matches the column count.
func Columns(header models.Row) ([]models.Column, error) {
	var cols []models.Column
	seen := make(map[string]int)
	for idx, c := range header {
		label := strings.TrimSpace(c.String())
		if label == "" {
			continue
		}
		seen[label]++
		if n := seen[label]; n > 1 {
			for {
				candidate := fmt.Sprintf("%s_%d", label, n)
				if seen[candidate] == 0 {
					seen[candidate]++
					label = candidate
					break
				}
				n++
			}
		}
		cols = append(cols, models.Column{Index: idx, Label: label})
	}
	if len(cols) == 0 {
		return nil, ErrMalformedHeader
	}
	return cols, nil
}

// Align maps one data row onto the header's column schema. Alignment is
// strictly index-based: cells missing from a short row become empty, cells
// beyond the schema are ignored, and text values are trimmed. The schema
// never grows mid-table.
func Align(cols []models.Column, row models.Row) models.AlignedRow {
	out := make(models.AlignedRow, len(cols))
	for _, col := range cols {
		var c models.Cell
		if col.Index < len(row) {
			c = row[col.Index]
		}
		if c.Kind == models.Text {
			c = models.TextCell(strings.TrimSpace(c.Text))
		}
		out[col.Label] = c
	}
	return out
}
