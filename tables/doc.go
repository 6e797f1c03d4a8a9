// Package tables reconstructs and classifies the data tables of ae7q.com
// query pages.
//
// The site publishes license, callsign and application history as plain
// HTML tables with no schema. Merged cells (rowspan and colspan), ditto
// marks and one-row-per-callsign vanity listings all have to be undone
// before a table can be read as records.
//
// # Pipeline
//
// [Build] turns a [model.RawTable] into a [model.Grid]:
//
//  1. [Reconstruct] expands spans so every logical cell has a value
//  2. [ResolveDittos] copies values down over ditto marks
//  3. [MergeVanity] collapses vanity application rows into one per file number
//
// Cell text is typed by [ParseValue], which recognises the site's three
// date formats and its "(none)" marker.
//
// # Classification
//
// A [RuleSet] is an ordered list of [Rule]s that look at row counts, row
// lengths and header text. Each query type has its own list:
//
//   - [CallRules] - callsign history
//   - [FrnRules] - FRN history
//   - [LicenseeRules] - licensee ID history
//   - [ApplicationRules] - application detail
//
// Rule sets are registered globally and can be retrieved by name:
//
//	rs, ok := tables.GetRuleSet("call")
//	table := rs.Apply(grid)
//
// Classification is total: a grid no rule matches is Generic.
package tables
