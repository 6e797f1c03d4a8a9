package tables

import (
	"fmt"

	"github.com/tsawler/ae7q/model"
)

// Build turns one markup table into a finished grid.
//
// The steps are:
//
//  1. Span expansion ([Reconstruct])
//  2. Ditto resolution ([ResolveDittos])
//  3. Vanity row merging ([MergeVanity]), for tables that need it
func Build(raw model.RawTable) (model.Grid, error) {
	if len(raw.Rows) == 0 {
		return nil, ErrEmptyTable
	}

	// Step 1: expand spans into a grid
	grid := Reconstruct(raw)

	// Step 2: ditto marks need aligned columns, so they come after expansion
	if err := ResolveDittos(grid); err != nil {
		return nil, fmt.Errorf("resolving ditto marks: %w", err)
	}

	// Step 3: one row per vanity application
	grid, _ = MergeVanity(grid)

	return grid, nil
}
