package tables

import (
	"github.com/tsawler/ae7q/model"
)

// VanityHeader is the last header cell of application history tables that
// list requested vanity callsigns one per row.
const VanityHeader = "Vanity callsign(s) applied for"

// VanityKeyColumn is the column holding the application's ULS file number.
const VanityKeyColumn = 4

type vanityGroup struct {
	row   model.Row
	calls []model.Value
}

// MergeVanity collapses the rows of a vanity application history table so
// that each application appears once.
//
// Rows are grouped by the file number in VanityKeyColumn, keeping the order
// in which file numbers first appear. Each merged row takes its leading
// columns from the first row of its group and replaces the trailing column
// with a list of every non-blank trailing value in the group, in source
// order. The header row is kept as is.
//
// Grids whose header does not end in VanityHeader are returned unchanged
// with ok set to false.
func MergeVanity(grid model.Grid) (merged model.Grid, ok bool) {
	if len(grid) == 0 || !grid[0].TextAt(len(grid[0])-1, VanityHeader) {
		return grid, false
	}

	header := grid[0]
	trailing := len(header) - 1

	var groups []*vanityGroup
	byKey := make(map[string]*vanityGroup)

	for _, row := range grid[1:] {
		key := row.Cell(VanityKeyColumn).String()
		g, seen := byKey[key]
		if !seen {
			lead := row
			if len(lead) > trailing {
				lead = lead[:trailing]
			}
			g = &vanityGroup{row: append(model.Row(nil), lead...)}
			byKey[key] = g
			groups = append(groups, g)
		}
		if len(row) > trailing {
			for _, v := range row[trailing:] {
				if !v.IsBlank() {
					g.calls = append(g.calls, v)
				}
			}
		}
	}

	merged = make(model.Grid, 0, len(groups)+1)
	merged = append(merged, header)
	for _, g := range groups {
		merged = append(merged, append(g.row, model.List(g.calls)))
	}
	return merged, true
}
