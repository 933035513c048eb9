package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Row is one grid row. Rows may be ragged: lengths can differ within a grid.
type Row []Cell

// Grid is the raw 2-D cell array for one sheet, as supplied by a grid source.
// Extraction treats it as read-only.
type Grid []Row

// Clone returns a deep copy of the grid sharing no storage with the original.
func (g Grid) Clone() (Grid, error) {
	if g == nil {
		return nil, nil
	}
	out := make(Grid, 0, len(g))
	if err := deepcopy.Copy(&out, g); err != nil {
		return nil, err
	}
	return out, nil
}
