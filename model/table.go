package model

import (
	"strings"

	"golang.org/x/text/width"
)

// NoHeader is the header index of a table without a header row.
const NoHeader = -1

// Table is a classified table: a schema tag, an optional header row and the
// data rows that follow it.
type Table struct {
	Schema Schema

	// Header is nil when the table has no header row.
	Header Row

	// HeaderIndex is the index of the header row in the source grid, or
	// NoHeader.
	HeaderIndex int

	Rows Grid
}

// NewTable splits grid into header and data rows. headerIndex selects the
// header row; rows before it are dropped and rows after it become data.
// NoHeader (or an out-of-range index) keeps every row as data.
func NewTable(schema Schema, grid Grid, headerIndex int) *Table {
	t := &Table{
		Schema:      schema,
		HeaderIndex: NoHeader,
	}
	if headerIndex < 0 || headerIndex >= len(grid) {
		t.Rows = grid
		return t
	}
	t.HeaderIndex = headerIndex
	t.Header = grid[headerIndex]
	t.Rows = grid[headerIndex+1:]
	return t
}

// HasHeader reports whether the table has a header row.
func (t *Table) HasHeader() bool {
	return t.HeaderIndex != NoHeader
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// allRows returns the header (if any) followed by the data rows.
func (t *Table) allRows() []Row {
	rows := make([]Row, 0, len(t.Rows)+1)
	if t.HasHeader() {
		rows = append(rows, t.Header)
	}
	return append(rows, t.Rows...)
}

// CSV renders the table as semicolon-separated cells, one row per line.
// List cells are rendered with their elements joined by commas.
func (t *Table) CSV() string {
	rows := t.allRows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row.Strings(), ";")
	}
	return strings.Join(lines, "\n")
}

// PrettyCSV renders the same cells as CSV, padded into aligned columns
// separated by " | ". Column width is the widest rendered cell in that
// column, measured in display cells.
func (t *Table) PrettyCSV() string {
	rows := t.allRows()
	cells := make([][]string, len(rows))
	var widths []int
	for i, row := range rows {
		cells[i] = row.Strings()
		for j, s := range cells[i] {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := DisplayWidth(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	for i, row := range cells {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, s := range row {
			if j > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(s)
			// no trailing padding on the last column
			if j < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-DisplayWidth(s)))
			}
		}
	}
	return sb.String()
}

// DisplayWidth returns the number of terminal cells s occupies. East Asian
// wide and fullwidth runes count as two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
