// Package source loads sheet grids from xlsx workbooks. It is the only
// place that touches spreadsheet file formats; the extraction pipeline sees
// plain grids.
package source

import (
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// Sheets returns the workbook's sheet names in workbook order.
func Sheets(f *excelize.File) []string {
	return f.GetSheetList()
}

// SheetGrid reads one sheet into a grid. Cell values are parsed
// number-first: anything that parses as a float becomes a numeric cell,
// everything else stays text.
func SheetGrid(f *excelize.File, sheet string) (models.Grid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for i, row := range rows {
		r := make(models.Row, len(row))
		for j, v := range row {
			r[j] = parseCell(v)
		}
		grid[i] = r
	}
	return grid, nil
}

func parseCell(s string) models.Cell {
	if s == "" {
		return models.Cell{}
	}
	// ParseFloat also accepts "Inf" and "NaN"; those stay text, since
	// non-finite values have no JSON encoding.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}
