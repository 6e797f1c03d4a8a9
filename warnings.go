package ae7q

import (
	"fmt"
	"strings"
)

// DocumentWarning is the Table index of warnings about the page as a whole.
const DocumentWarning = -1

// Warning is a non-fatal problem found while reading a page. The rest of
// the page was still processed.
type Warning struct {
	// Table is the index of the table concerned, or DocumentWarning
	Table int

	Message string
}

// String formats the warning with its table index.
func (w Warning) String() string {
	if w.Table == DocumentWarning {
		return w.Message
	}
	return fmt.Sprintf("table %d: %s", w.Table, w.Message)
}

// FormatWarnings joins warnings into a single line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
