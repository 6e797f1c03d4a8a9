package tables

import (
	"github.com/tsawler/ae7q/model"
)

// Rule recognises one table shape.
type Rule struct {
	// Name describes the rule in diagnostics
	Name string

	// Schema assigned when the rule matches
	Schema model.Schema

	// Header is the grid index of the header row, or model.NoHeader
	Header int

	// Relabel overrides header cells by column index
	Relabel map[int]string

	// Match inspects the grid shape. It must not assume any row exists.
	Match func(g model.Grid) bool
}

// RuleSet is the ordered decision list used for one kind of query. The
// first matching rule wins; a grid no rule matches becomes a Generic table
// with FallbackHeader as its header index.
type RuleSet struct {
	Name           string
	Rules          []Rule
	FallbackHeader int
}

// Match returns the first rule that matches g.
func (rs RuleSet) Match(g model.Grid) (Rule, bool) {
	for _, r := range rs.Rules {
		if r.Match(g) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify returns the schema of g under rs. It never fails: unrecognised
// shapes are Generic.
func Classify(g model.Grid, rs RuleSet) model.Schema {
	if r, ok := rs.Match(g); ok {
		return r.Schema
	}
	return model.SchemaGeneric
}

// Apply classifies g and splits it into header and data rows. g itself is
// never modified; relabelled headers are copies.
func (rs RuleSet) Apply(g model.Grid) *model.Table {
	r, ok := rs.Match(g)
	if !ok {
		return model.NewTable(model.SchemaGeneric, g, rs.FallbackHeader)
	}

	if len(r.Relabel) > 0 && r.Header >= 0 && r.Header < len(g) {
		header := append(model.Row(nil), g[r.Header]...)
		for col, label := range r.Relabel {
			if col < len(header) {
				header[col] = model.Text(label)
			}
		}
		g = append(model.Grid(nil), g...)
		g[r.Header] = header
	}

	return model.NewTable(r.Schema, g, r.Header)
}

// Shape predicates. Each is total over any grid, including an empty one.

// rowCount matches grids with exactly n rows.
func rowCount(n int) func(model.Grid) bool {
	return func(g model.Grid) bool { return len(g) == n }
}

// rowLen matches grids whose row i has exactly n cells.
func rowLen(i, n int) func(model.Grid) bool {
	return func(g model.Grid) bool { return g.RowLen(i) == n }
}

// cellText matches grids whose cell (i, j) is the text s.
func cellText(i, j int, s string) func(model.Grid) bool {
	return func(g model.Grid) bool {
		return i < len(g) && g[i].TextAt(j, s)
	}
}

// lastText matches grids whose row i ends in the text s.
func lastText(i int, s string) func(model.Grid) bool {
	return func(g model.Grid) bool {
		return i < len(g) && len(g[i]) > 0 && g[i].TextAt(len(g[i])-1, s)
	}
}

// all matches when every predicate does, checked in order.
func all(preds ...func(model.Grid) bool) func(model.Grid) bool {
	return func(g model.Grid) bool {
		for _, p := range preds {
			if !p(g) {
				return false
			}
		}
		return true
	}
}
