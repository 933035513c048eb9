package output

import (
	"sort"

	toon "github.com/mateuszkardas/toon-go"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// ToTOON serializes a workbook's tables in the compact TOON format. Tables
// are flattened to header labels plus positional rows, which TOON encodes
// far more tightly than label-keyed maps.
func ToTOON(wb *models.WorkbookTables) (string, error) {
	return toon.Marshal(compactPayload(wb), nil)
}

func compactPayload(wb *models.WorkbookTables) map[string]any {
	names := make([]string, 0, len(wb.Sheets))
	for name := range wb.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	var tables []map[string]any
	for _, name := range names {
		sheet := wb.Sheets[name]
		for _, t := range sheet.Tables {
			labels := t.Header.Labels()
			rows := make([][]any, len(t.Rows))
			for i, row := range t.Rows {
				rec := make([]any, len(t.Header.Columns))
				for j, col := range t.Header.Columns {
					rec[j] = row[col.Label].Value()
				}
				rows[i] = rec
			}
			tables = append(tables, map[string]any{
				"sheet":      sheet.Sheet,
				"header_row": t.Header.Row,
				"columns":    labels,
				"rows":       rows,
			})
		}
	}
	return map[string]any{
		"book_name": wb.BookName,
		"tables":    tables,
	}
}
