// Package models defines data structures for table extraction.
package models

import (
	"encoding/json"
	"strconv"
)

// Kind is the semantic type of a cell value.
type Kind int

const (
	// Empty marks a cell with no value.
	Empty Kind = iota
	// Text marks a string-valued cell.
	Text
	// Number marks a numeric cell.
	Number
)

// Cell is a single value in a grid.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// TextCell returns a text cell. An empty string yields an empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: Text, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: Number, Number: f}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// String returns the display form of the cell value.
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the cell as a plain scalar: string, float64, or nil.
func (c Cell) Value() any {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return c.Number
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as its scalar value.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}
