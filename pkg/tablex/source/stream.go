package source

import (
	"math"
	"strconv"

	"github.com/thedatashed/xlsxreader"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// StreamSource reads grids with the streaming xlsxreader backend, which
// avoids holding a whole decompressed workbook in memory.
type StreamSource struct {
	xl *xlsxreader.XlsxFileCloser
}

// OpenStream opens a workbook for streaming reads. Close when done.
func OpenStream(path string) (*StreamSource, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &StreamSource{xl: xl}, nil
}

// Close releases the underlying file.
func (s *StreamSource) Close() error {
	return s.xl.Close()
}

// Sheets returns the workbook's sheet names.
func (s *StreamSource) Sheets() []string {
	return s.xl.Sheets
}

// Grid reads one sheet into a grid. Streamed rows arrive sparse, so cells
// are placed by their declared column index and gaps become empty cells.
func (s *StreamSource) Grid(sheet string) (models.Grid, error) {
	var grid models.Grid
	for row := range s.xl.ReadRows(sheet) {
		if row.Error != nil {
			return nil, row.Error
		}
		for len(grid) < row.Index {
			grid = append(grid, models.Row{})
		}
		r := models.Row{}
		for _, cell := range row.Cells {
			idx := cell.ColumnIndex()
			for len(r) <= idx {
				r = append(r, models.Cell{})
			}
			r[idx] = streamCell(cell)
		}
		grid[row.Index-1] = r
	}
	return grid, nil
}

func streamCell(c xlsxreader.Cell) models.Cell {
	if c.Value == "" {
		return models.Cell{}
	}
	if c.Type == xlsxreader.TypeNumerical {
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return models.NumberCell(f)
		}
	}
	return models.TextCell(c.Value)
}
