// Package output serializes extraction results for the CLI: JSON, TOON, and
// plain-text table rendering.
package output

import (
	"encoding/json"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// ToJSON serializes a value to JSON, optionally indented.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SheetToJSON serializes one sheet's tables.
func SheetToJSON(s *models.SheetTables, pretty bool) ([]byte, error) {
	return ToJSON(s, pretty)
}
