// Package model provides the data types shared by every stage of table
// reconstruction.
//
// # Values
//
// A [Value] is the typed content of one cell. It holds exactly one of:
//
//   - text ([Text])
//   - a calendar timestamp ([Date])
//   - nothing ([Empty])
//   - a list of values ([List]), used only for merged vanity callsigns
//
// # Grids
//
// Markup tables arrive as [RawTable] values whose cells still carry their
// rowspan and colspan. Span expansion turns them into a [Grid] of [Row]s with
// one [Value] per logical column.
//
// # Classified Tables
//
// A [Table] pairs a grid with a [Schema] tag and an optional header row:
//
//	t := model.NewTable(model.SchemaCallHistory, grid, 0)
//	fmt.Println(t.CSV())
//
// Export methods: CSV() and PrettyCSV().
package model
