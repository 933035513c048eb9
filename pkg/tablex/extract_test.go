package tablex

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

func textRow(values ...string) models.Row {
	row := make(models.Row, len(values))
	for i, v := range values {
		row[i] = models.TextCell(v)
	}
	return row
}

func TestExtractGridEmptyGrid(t *testing.T) {
	tables := ExtractGrid(nil, DefaultOptions())
	if len(tables) != 0 {
		t.Errorf("expected zero tables, got %d", len(tables))
	}
}

func TestExtractGridAllBlankRows(t *testing.T) {
	grid := models.Grid{{}, {}, {}}
	tables := ExtractGrid(grid, DefaultOptions())
	if len(tables) != 0 {
		t.Errorf("expected zero tables, got %d", len(tables))
	}
}

func TestExtractGridHeaderOnlyTable(t *testing.T) {
	grid := models.Grid{textRow("Name", "Age")}

	tables := ExtractGrid(grid, DefaultOptions())
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if len(tables[0].Rows) != 0 {
		t.Errorf("expected 0 data rows, got %d", len(tables[0].Rows))
	}
	if got := tables[0].Header.Labels(); !reflect.DeepEqual(got, []string{"Name", "Age"}) {
		t.Errorf("labels: got %v", got)
	}
}

func TestExtractGridRaggedRow(t *testing.T) {
	grid := models.Grid{
		textRow("Name", "Age", "City"),
		textRow("Ana", "30"),
	}

	tables := ExtractGrid(grid, DefaultOptions())
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	expected := models.AlignedRow{
		"Name": models.TextCell("Ana"),
		"Age":  models.TextCell("30"),
		"City": {},
	}
	if !reflect.DeepEqual(tables[0].Rows[0], expected) {
		t.Errorf("got %+v, want %+v", tables[0].Rows[0], expected)
	}
}

func TestExtractGridTwoTablesNoGap(t *testing.T) {
	grid := models.Grid{
		textRow("Name", "Age"),
		{models.TextCell("Ana"), models.NumberCell(30)},
		textRow("Product", "Price"),
		{models.TextCell("Pen"), models.NumberCell(1.50)},
	}

	tables := ExtractGrid(grid, DefaultOptions())
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if len(tables[0].Rows) != 1 || len(tables[1].Rows) != 1 {
		t.Errorf("expected one data row each, got %d and %d",
			len(tables[0].Rows), len(tables[1].Rows))
	}
	if got := tables[1].Header.Labels(); !reflect.DeepEqual(got, []string{"Product", "Price"}) {
		t.Errorf("second table labels: got %v", got)
	}
}

func TestExtractGridKeywordDriven(t *testing.T) {
	grid := models.Grid{
		textRow("ID", "Value"),
		{models.NumberCell(1), models.NumberCell(10)},
		{models.NumberCell(2), models.NumberCell(20)},
	}

	tables := ExtractGrid(grid, Options{HeaderKeywords: []string{"id"}})
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if len(tables[0].Rows) != 2 {
		t.Errorf("expected 2 data rows, got %d", len(tables[0].Rows))
	}
}

func TestExtractGridDropsMalformedHeaderBlock(t *testing.T) {
	// Whitespace-only cells are non-blank but yield zero usable labels;
	// the block is dropped and the next table still comes through.
	grid := models.Grid{
		textRow("   ", " "),
		{models.NumberCell(1), models.NumberCell(2)},
		{},
		textRow("Name", "Age"),
		{models.TextCell("Ana"), models.NumberCell(30)},
	}

	tables := ExtractGrid(grid, DefaultOptions())
	if len(tables) != 1 {
		t.Fatalf("expected 1 table after dropping malformed block, got %d", len(tables))
	}
	if got := tables[0].Header.Labels(); !reflect.DeepEqual(got, []string{"Name", "Age"}) {
		t.Errorf("labels: got %v", got)
	}
}

func TestExtractGridKeySetCompleteness(t *testing.T) {
	grid := models.Grid{
		textRow("Name", "Total", "Total"),
		textRow("Ana", "1"),
		textRow("Bob", "2", "3", "4"),
	}

	tables := ExtractGrid(grid, DefaultOptions())
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	labels := tables[0].Header.Labels()
	if !reflect.DeepEqual(labels, []string{"Name", "Total", "Total_2"}) {
		t.Fatalf("labels: got %v", labels)
	}
	for i, row := range tables[0].Rows {
		if len(row) != len(labels) {
			t.Errorf("row %d: key count %d, want %d", i, len(row), len(labels))
		}
		for _, label := range labels {
			if _, ok := row[label]; !ok {
				t.Errorf("row %d: missing key %q", i, label)
			}
		}
	}
}

func TestExtractGridIdempotentAndNonMutating(t *testing.T) {
	grid := models.Grid{
		textRow("Name", "Age"),
		{models.TextCell("  Ana  "), models.NumberCell(30)},
		{},
		textRow("Product", "Price"),
		{models.TextCell("Pen"), models.NumberCell(1.50)},
	}
	snapshot, err := grid.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	first := ExtractGrid(grid, DefaultOptions())
	second := ExtractGrid(grid, DefaultOptions())

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same grid produced different tables")
	}
	if !reflect.DeepEqual(grid, snapshot) {
		t.Error("extraction mutated the input grid")
	}
}

func TestExtractFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Name")
	f.SetCellValue(sheet, "B1", "Amount")
	f.SetCellValue(sheet, "A2", "Ana")
	f.SetCellValue(sheet, "B2", 30)
	// blank row 3
	f.SetCellValue(sheet, "A4", "Product")
	f.SetCellValue(sheet, "B4", "Price")
	f.SetCellValue(sheet, "A5", "Pen")
	f.SetCellValue(sheet, "B5", 1.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("failed to save test file: %v", err)
	}

	wb, err := ExtractFile(tmpFile, DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if wb.BookName != "test.xlsx" {
		t.Errorf("book name: got %q", wb.BookName)
	}

	tables := wb.Sheets[sheet].Tables
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if got := tables[0].Rows[0]["Name"]; got != models.TextCell("Ana") {
		t.Errorf("first table row: got %+v", got)
	}
	if got := tables[1].Rows[0]["Price"]; got != models.NumberCell(1.5) {
		t.Errorf("second table row: got %+v", got)
	}
}

func TestExtractStream(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "ID")
	f.SetCellValue(sheet, "B1", "Value")
	f.SetCellValue(sheet, "A2", 1)
	f.SetCellValue(sheet, "B2", 10)

	tmpFile := filepath.Join(t.TempDir(), "stream.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("failed to save test file: %v", err)
	}

	wb, err := ExtractStream(tmpFile, Options{HeaderKeywords: []string{"id"}})
	if err != nil {
		t.Fatalf("ExtractStream failed: %v", err)
	}
	tables := wb.Sheets[sheet].Tables
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	if got := tables[0].Rows[0]["Value"]; got != models.NumberCell(10) {
		t.Errorf("aligned value: got %+v", got)
	}
}
