// Package records projects classified table rows into named-field records.
//
// Each [model.Schema] other than Generic has a fixed column layout and a
// matching record type, for example [CallHistory] or [FrnHistory]. The
// mapping from schema to layout is a plain table lookup:
//
//	recs, err := records.Project(table)
//	for _, r := range recs {
//	    if h, ok := r.(records.CallHistory); ok {
//	        fmt.Println(h.EntityName, h.LicenseStatus)
//	    }
//	}
//
// Two cell transforms recur across schemas: [SplitFileNumber] separates a
// "0008963527 (Online)" cell into number and filing type, and [Flag] reads
// a "Y" cell as true.
//
// A row with fewer cells than its schema needs is reported as a
// [*RowError]; rows are never guessed at.
package records
