package tables

import (
	"github.com/tsawler/ae7q/model"
)

// pendingSpan is a cell whose rowspan still covers rows below the one it
// was declared in.
type pendingSpan struct {
	col       int
	value     model.Value
	remaining int
}

// spanQueue holds pending spans ordered by column.
type spanQueue []pendingSpan

// push inserts p after any entries with the same or a lower column.
func (q *spanQueue) push(p pendingSpan) {
	i := len(*q)
	for i > 0 && (*q)[i-1].col > p.col {
		i--
	}
	*q = append(*q, pendingSpan{})
	copy((*q)[i+1:], (*q)[i:])
	(*q)[i] = p
}

// pop removes and returns the lowest-column entry.
func (q *spanQueue) pop() pendingSpan {
	p := (*q)[0]
	*q = (*q)[1:]
	return p
}

// rowBuilder accumulates one output row and the spans it hands on to the
// next row.
type rowBuilder struct {
	row  model.Row
	next spanQueue
	idx  int
}

// place writes value at the next free column. A rowspan above 1 carries the
// value into the rows below at the same column.
func (b *rowBuilder) place(value model.Value, rowspan int) {
	b.row = append(b.row, value)
	if rowspan > 1 {
		b.next.push(pendingSpan{col: b.idx, value: value, remaining: rowspan - 1})
	}
	b.idx++
}

// carry places a pending span from the row above.
func (b *rowBuilder) carry(p pendingSpan) {
	b.row = append(b.row, p.value)
	if p.remaining > 1 {
		b.next.push(pendingSpan{col: p.col, value: p.value, remaining: p.remaining - 1})
	}
	b.idx++
}

// Reconstruct expands the rowspans and colspans of a markup table into a
// grid with one value per logical cell.
//
// Pending spans are always placed before any source cell at or past their
// column, so no two cells ever land in the same position. Spans that reach
// past the last source row produce extra rows until they are used up.
// Spans are cut to model.MaxRowSpan rows and model.MaxColSpan columns.
func Reconstruct(raw model.RawTable) model.Grid {
	grid := make(model.Grid, 0, len(raw.Rows))
	var pending spanQueue

	for _, src := range raw.Rows {
		b := &rowBuilder{row: make(model.Row, 0, len(src)+len(pending))}

		for _, cell := range src {
			for len(pending) > 0 && pending[0].col <= b.idx {
				b.carry(pending.pop())
			}

			value := ParseValue(cell.Text)
			rowspan := model.ClampSpan(cell.RowSpan, model.MaxRowSpan)
			colspan := model.ClampSpan(cell.ColSpan, model.MaxColSpan)
			for i := 0; i < colspan; i++ {
				b.place(value, rowspan)
			}
		}

		// spanned columns to the right of the last source cell
		for len(pending) > 0 {
			b.carry(pending.pop())
		}

		grid = append(grid, b.row)
		pending = b.next
	}

	for len(pending) > 0 {
		b := &rowBuilder{row: make(model.Row, 0, len(pending))}
		for len(pending) > 0 {
			b.carry(pending.pop())
		}
		grid = append(grid, b.row)
		pending = b.next
	}

	return grid
}
