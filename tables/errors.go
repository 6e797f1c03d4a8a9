package tables

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTable is returned when a table has no rows to classify.
	ErrEmptyTable = errors.New("table has no rows")

	// ErrDittoWithoutPredecessor is returned when a ditto mark has no cell
	// above it to copy from.
	ErrDittoWithoutPredecessor = errors.New("ditto mark without preceding row")
)

// DittoError locates a ditto mark that could not be resolved.
type DittoError struct {
	Row int
	Col int
}

func (e *DittoError) Error() string {
	return fmt.Sprintf("row %d, column %d: %v", e.Row, e.Col, ErrDittoWithoutPredecessor)
}

func (e *DittoError) Unwrap() error {
	return ErrDittoWithoutPredecessor
}
