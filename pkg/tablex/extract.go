package tablex

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/parser"
	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/source"
)

// ExtractGrid runs the full pipeline over one grid: classify rows, segment
// them into blocks, and align each block's data rows under its header. An
// empty grid yields zero tables. A block whose header has no usable labels
// is dropped with a warning; the remaining blocks are still extracted.
func ExtractGrid(grid models.Grid, opts Options) []models.Table {
	return extractGrid("", grid, opts)
}

func extractGrid(sheet string, grid models.Grid, opts Options) []models.Table {
	log := opts.logger()
	classes := parser.ClassifyRows(grid, opts.config())
	if log.Enabled(context.Background(), slog.LevelDebug) {
		for i, class := range classes {
			log.Debug("classified row", "sheet", sheet, "row", i, "class", class.String())
		}
	}

	blocks := parser.Segment(classes)
	tables := make([]models.Table, 0, len(blocks))
	for _, b := range blocks {
		cols, err := parser.Columns(grid[b.Header])
		if err != nil {
			log.Warn("dropping table block",
				"error", &BlockError{Sheet: sheet, Row: b.Header, Err: err})
			continue
		}
		tables = append(tables, parser.Build(grid, b, classes, cols))
	}
	return tables
}

// ExtractFile opens an xlsx workbook and extracts tables from every sheet.
// A sheet that fails to load is recorded with zero tables and a warning;
// one bad sheet never aborts the workbook.
func ExtractFile(path string, opts Options) (*models.WorkbookTables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.WorkbookTables{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]models.SheetTables),
	}
	for _, sheet := range f.GetSheetList() {
		grid, err := source.SheetGrid(f, sheet)
		if err != nil {
			opts.logger().Warn("failed to load sheet", "sheet", sheet, "error", err)
			grid = nil
		}
		wb.Sheets[sheet] = models.SheetTables{
			Sheet:  sheet,
			Tables: extractGrid(sheet, grid, opts),
		}
	}
	return wb, nil
}

// ExtractStream is ExtractFile on the streaming xlsxreader backend, for
// workbooks too large to hold open in excelize.
func ExtractStream(path string, opts Options) (*models.WorkbookTables, error) {
	src, err := source.OpenStream(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	wb := &models.WorkbookTables{
		BookName: filepath.Base(path),
		Sheets:   make(map[string]models.SheetTables),
	}
	for _, sheet := range src.Sheets() {
		grid, err := src.Grid(sheet)
		if err != nil {
			opts.logger().Warn("failed to load sheet", "sheet", sheet, "error", err)
			grid = nil
		}
		wb.Sheets[sheet] = models.SheetTables{
			Sheet:  sheet,
			Tables: extractGrid(sheet, grid, opts),
		}
	}
	return wb, nil
}
