package models

// Column is one header cell: its column position in the grid and its label,
// unique within the owning table.
type Column struct {
	// Index is the 0-based grid column the label occupies.
	Index int `json:"index"`
	// Label is the deduplicated column label.
	Label string `json:"label"`
}

// Header anchors a table: the header's row index plus its column schema in
// left-to-right order.
type Header struct {
	// Row is the 0-based grid row the header was found on.
	Row int `json:"row"`
	// Columns is the ordered column schema.
	Columns []Column `json:"columns"`
}

// Labels returns the column labels in schema order.
func (h Header) Labels() []string {
	labels := make([]string, len(h.Columns))
	for i, col := range h.Columns {
		labels[i] = col.Label
	}
	return labels
}

// AlignedRow maps column label to cell value. Its key set always equals the
// owning header's label set; ordering lives in Header.Columns.
type AlignedRow map[string]Cell

// Table is one extracted table: a header and its aligned data rows in
// original sheet order.
type Table struct {
	Header Header       `json:"header"`
	Rows   []AlignedRow `json:"rows"`
}

// SheetTables holds the tables extracted from a single sheet, in
// top-to-bottom sheet order.
type SheetTables struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Tables contains the extracted tables.
	Tables []Table `json:"tables"`
}

// WorkbookTables is the workbook-level container with per-sheet results.
type WorkbookTables struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to its extracted tables.
	Sheets map[string]SheetTables `json:"sheets"`
}
