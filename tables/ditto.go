package tables

import (
	"github.com/tsawler/ae7q/model"
)

// DittoMark is the glyph meaning "same as the cell above".
const DittoMark = `"`

// ResolveDittos replaces every ditto mark in grid with the value in the same
// column of the previous row. Rows are resolved top to bottom, so a run of
// ditto marks copies the last real value down the column.
//
// A ditto mark on the first row, or in a column the previous row does not
// have, yields a *DittoError.
func ResolveDittos(grid model.Grid) error {
	for i, row := range grid {
		for j, v := range row {
			if v.Kind() != model.KindText || v.Text() != DittoMark {
				continue
			}
			if i == 0 || j >= len(grid[i-1]) {
				return &DittoError{Row: i, Col: j}
			}
			row[j] = grid[i-1][j]
		}
	}
	return nil
}
