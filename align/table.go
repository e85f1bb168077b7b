package align

import "math"

// table holds the cost and pointer cells of one alignment together with
// the mapping from band-relative to absolute columns.
//
// Row i stores absolute columns offsets[i] .. offsets[i]+len(costs[i])-1.
// The full engine uses zero offsets and rows spanning every column; the
// banded engine stores at most BandWidth cells per row.
//
// A table lives for a single call and is never shared.
type table struct {
	costs   [][]float64
	ptrs    [][]Direction
	offsets []int
}

// newTable allocates the row headers of a table with the given row count.
// Rows themselves are allocated by the engine with setRow.
func newTable(rows int) *table {
	return &table{
		costs:   make([][]float64, rows),
		ptrs:    make([][]Direction, rows),
		offsets: make([]int, rows),
	}
}

// setRow allocates row i with width cells whose band column 0 sits at
// absolute column offset.
func (t *table) setRow(i, offset, width int) ([]float64, []Direction) {
	t.costs[i] = make([]float64, width)
	t.ptrs[i] = make([]Direction, width)
	t.offsets[i] = offset
	return t.costs[i], t.ptrs[i]
}

// rows returns the number of allocated rows.
func (t *table) rows() int { return len(t.costs) }

// width returns the number of stored cells of row i.
func (t *table) width(i int) int { return len(t.costs[i]) }

// at returns the cost at band column j of row i, or +Inf when the cell is
// outside the stored band.
func (t *table) at(i, j int) float64 {
	if i < 0 || i >= len(t.costs) || j < 0 || j >= len(t.costs[i]) {
		return math.Inf(1)
	}
	return t.costs[i][j]
}

// absCol maps band column j of row i to its absolute column.
func (t *table) absCol(i, j int) int { return t.offsets[i] + j }

// cells returns the number of stored cells, i.e. the work done.
func (t *table) cells() int {
	n := 0
	for _, row := range t.costs {
		n += len(row)
	}
	return n
}
