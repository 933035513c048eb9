package parser

import (
	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// Build assembles the table for one block, aligning every data row in
// original order. The header row and any blank rows inside the block are
// skipped, not aligned. Classifications are reused from segmentation, never
// recomputed.
func Build(grid models.Grid, block Block, classes []RowClass, cols []models.Column) models.Table {
	t := models.Table{
		Header: models.Header{Row: block.Header, Columns: cols},
		Rows:   []models.AlignedRow{},
	}
	for i := block.Start; i < block.End && i < len(grid); i++ {
		if classes[i] != Data {
			continue
		}
		t.Rows = append(t.Rows, Align(cols, grid[i]))
	}
	return t
}
