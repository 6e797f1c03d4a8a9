package ae7q

import "fmt"

// Stages a table can fail in.
const (
	StageBuild   = "build"
	StageProject = "project"
)

// TableError is a failure confined to one table of a page.
type TableError struct {
	Index int
	Stage string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %d: %s: %v", e.Index, e.Stage, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
