package tablex

import (
	"fmt"

	"github.com/shangtechnology/excel-table-extractor/pkg/tablex/parser"
)

// ErrMalformedHeader indicates a block whose header row has zero usable
// column labels. Such blocks are dropped; extraction continues.
var ErrMalformedHeader = parser.ErrMalformedHeader

// BlockError describes a failure confined to one table block. Failures
// never propagate past block boundaries.
type BlockError struct {
	Sheet string
	Row   int
	Err   error
}

func (e *BlockError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("block at row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("block at row %d in sheet %q: %v", e.Row, e.Sheet, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
