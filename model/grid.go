package model

import (
	"errors"
	"strconv"
	"strings"
)

// Span limits, as applied by browsers.
const (
	MaxRowSpan = 65534
	MaxColSpan = 1000
)

// RawCell is a table cell as found in the markup, before span expansion.
type RawCell struct {
	Text    string
	RowSpan int
	ColSpan int
}

// NewRawCell builds a RawCell from cell text and the raw rowspan/colspan
// attribute strings. Missing or malformed spans become 1; oversized spans
// are cut to MaxRowSpan and MaxColSpan.
func NewRawCell(text, rowspan, colspan string) RawCell {
	return RawCell{
		Text:    text,
		RowSpan: ParseSpan(rowspan, MaxRowSpan),
		ColSpan: ParseSpan(colspan, MaxColSpan),
	}
}

// ParseSpan converts a span attribute to an integer no larger than limit.
// Anything that is not a positive integer (empty, "50%", "0", "-2") is
// treated as a span of 1.
func ParseSpan(attr string, limit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return ClampSpan(n, limit)
	}
	if err != nil {
		return 1
	}
	return ClampSpan(n, limit)
}

// ClampSpan limits n to the range [1, limit].
func ClampSpan(n, limit int) int {
	if n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}

// RawTable is one markup table: rows of raw cells in source order.
type RawTable struct {
	Rows [][]RawCell
}

// Row is one logical row of typed values, one per column.
type Row []Value

// Strings returns the rendered text of every cell in the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

// Cell returns the value at col, or the empty value when out of range.
func (r Row) Cell(col int) Value {
	if col < 0 || col >= len(r) {
		return Empty()
	}
	return r[col]
}

// TextAt reports whether the cell at col is text equal to s.
func (r Row) TextAt(col int, s string) bool {
	v := r.Cell(col)
	return v.Kind() == KindText && v.Text() == s
}

// Last returns the final cell of the row, or the empty value for an empty row.
func (r Row) Last() Value {
	return r.Cell(len(r) - 1)
}

// Grid is an ordered sequence of rows.
type Grid []Row

// Width returns the number of columns in the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// RowLen returns the length of row i, or -1 if the row does not exist.
func (g Grid) RowLen(i int) int {
	if i < 0 || i >= len(g) {
		return -1
	}
	return len(g[i])
}

// IsRectangular reports whether every row has the same length as row 0.
func (g Grid) IsRectangular() bool {
	w := g.Width()
	for _, row := range g {
		if len(row) != w {
			return false
		}
	}
	return true
}
