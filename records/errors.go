package records

import (
	"errors"
	"fmt"

	"github.com/tsawler/ae7q/model"
)

// ErrShortRow is returned when a data row has fewer cells than its schema
// projects.
var ErrShortRow = errors.New("row has too few cells")

// RowError identifies the data row that could not be projected.
type RowError struct {
	Schema model.Schema
	Row    int // index among the table's data rows
	Want   int
	Got    int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v (want %d, got %d)", e.Schema, e.Row, ErrShortRow, e.Want, e.Got)
}

func (e *RowError) Unwrap() error {
	return ErrShortRow
}
