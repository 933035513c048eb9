package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// RenderText writes one table as an ASCII grid for terminal inspection.
func RenderText(w io.Writer, t models.Table) error {
	tw := tablewriter.NewWriter(w)
	tw.Header(t.Header.Labels())
	for _, row := range t.Rows {
		rec := make([]string, len(t.Header.Columns))
		for i, col := range t.Header.Columns {
			rec[i] = row[col.Label].String()
		}
		if err := tw.Append(rec); err != nil {
			return err
		}
	}
	return tw.Render()
}
