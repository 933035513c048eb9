// Package parser implements the table extraction pipeline over a raw sheet
// grid: row classification, block segmentation, and column alignment.
package parser

import (
	"strings"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/models"
)

// RowClass is the classification assigned to one grid row.
type RowClass int

const (
	// Blank marks a row whose cells are all empty.
	Blank RowClass = iota
	// Header marks a row whose cells are taken as column labels.
	Header
	// Data marks a non-blank row that belongs under the current header.
	Data
)

func (rc RowClass) String() string {
	switch rc {
	case Header:
		return "header"
	case Data:
		return "data"
	default:
		return "blank"
	}
}

// Config holds the header-detection tunables.
type Config struct {
	// Keywords are case-insensitive substrings that mark a row as a header.
	// Empty means keyword matching is disabled and only the shape fallback
	// applies.
	Keywords []string
	// TextRatioMin is the minimum share of text cells for a row to look
	// like a header in the shape fallback.
	TextRatioMin float64
	// NumericRatioMin is the minimum share of numeric cells the preceding
	// data row must have for the shape fallback to fire.
	NumericRatioMin float64
}

// rowShape summarizes the non-empty cell mix of one row.
type rowShape struct {
	nonEmpty int
	text     int
	numeric  int
}

func shapeOf(row models.Row) rowShape {
	var s rowShape
	for _, c := range row {
		switch c.Kind {
		case models.Text:
			s.nonEmpty++
			s.text++
		case models.Number:
			s.nonEmpty++
			s.numeric++
		}
	}
	return s
}

func (s rowShape) textRatio() float64 {
	if s.nonEmpty == 0 {
		return 0
	}
	return float64(s.text) / float64(s.nonEmpty)
}

func (s rowShape) numericRatio() float64 {
	if s.nonEmpty == 0 {
		return 0
	}
	return float64(s.numeric) / float64(s.nonEmpty)
}

func matchesKeyword(row models.Row, keywords []string) bool {
	for _, c := range row {
		if c.IsEmpty() {
			continue
		}
		text := strings.ToLower(c.String())
		for _, kw := range keywords {
			if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}

// ClassifyRows assigns a RowClass to every grid row in a single forward
// pass. Each decision depends only on the current row, the previous row's
// class, and the shape of the most recent data row: the first non-blank row
// after the grid start or after a blank run is always a header, since every
// table needs one to anchor alignment; later rows become headers on a
// keyword match or when a predominantly-text row follows predominantly-
// numeric data.
func ClassifyRows(grid models.Grid, cfg Config) []RowClass {
	classes := make([]RowClass, len(grid))
	prev := Blank
	var lastData rowShape
	haveData := false

	for i, row := range grid {
		shape := shapeOf(row)
		var class RowClass
		switch {
		case shape.nonEmpty == 0:
			class = Blank
		case prev == Blank:
			// Anchor rule: first non-blank row of a block.
			class = Header
		case matchesKeyword(row, cfg.Keywords):
			class = Header
		case haveData && shape.textRatio() >= cfg.TextRatioMin &&
			lastData.numericRatio() >= cfg.NumericRatioMin:
			class = Header
		default:
			class = Data
		}

		switch class {
		case Header:
			haveData = false
		case Data:
			lastData = shape
			haveData = true
		}
		classes[i] = class
		prev = class
	}
	return classes
}
