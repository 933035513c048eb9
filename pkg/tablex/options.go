// Package tablex extracts tables embedded in loosely-structured spreadsheet
// sheets: it finds each table's header row, aligns the data rows beneath it,
// and returns one structured table per block.
package tablex

import (
	"log/slog"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/parser"
)

// Default shape thresholds, used when the corresponding option is zero.
const (
	DefaultTextRatioMin    = 0.75
	DefaultNumericRatioMin = 0.75
)

// DefaultKeywords returns the stock header keyword set. The library itself
// applies no keywords unless asked; callers such as the CLI use this set as
// their default.
func DefaultKeywords() []string {
	return []string{"date", "name", "amount", "total", "price"}
}

// Options configures extraction behavior.
type Options struct {
	// HeaderKeywords are case-insensitive substrings that mark a row as a
	// header candidate. If empty, only the shape fallback heuristic is used.
	HeaderKeywords []string
	// TextRatioMin is the minimum text-cell share for a row to look like a
	// header in the shape fallback. Zero means DefaultTextRatioMin.
	TextRatioMin float64
	// NumericRatioMin is the minimum numeric-cell share of the preceding
	// data row for the shape fallback. Zero means DefaultNumericRatioMin.
	NumericRatioMin float64
	// Logger receives per-block warnings and per-row debug output.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options: stock keywords and
// stock shape thresholds.
func DefaultOptions() Options {
	return Options{
		HeaderKeywords: DefaultKeywords(),
	}
}

// config resolves zero-valued options to their defaults.
func (o Options) config() parser.Config {
	cfg := parser.Config{
		Keywords:        o.HeaderKeywords,
		TextRatioMin:    o.TextRatioMin,
		NumericRatioMin: o.NumericRatioMin,
	}
	if cfg.TextRatioMin == 0 {
		cfg.TextRatioMin = DefaultTextRatioMin
	}
	if cfg.NumericRatioMin == 0 {
		cfg.NumericRatioMin = DefaultNumericRatioMin
	}
	return cfg
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
