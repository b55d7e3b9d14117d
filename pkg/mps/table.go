package mps

import "fmt"

// Unset marks a cell the top-down solver has not computed yet.
// Every valid count is non-negative.
const Unset int32 = -1

// Table is the triangular DP table over positions [0, n).
// Row i stores M(i, j) for j = i .. n-1 at offset j-i.
type Table struct {
	rows [][]int32
}

// NewTable allocates a table for n positions with every cell set to fill.
func NewTable(n int, fill int32) *Table {
	rows := make([][]int32, n)
	for i := range rows {
		rows[i] = make([]int32, n-i)
		if fill != 0 {
			for k := range rows[i] {
				rows[i][k] = fill
			}
		}
	}
	return &Table{rows: rows}
}

// Len returns the number of positions the table covers.
func (t *Table) Len() int { return len(t.rows) }

// Get returns M(i, j). Intervals with j <= i hold no chord and return 0
// without touching storage.
func (t *Table) Get(i, j int) int32 {
	if j <= i {
		return 0
	}
	return t.rows[i][j-i]
}

// Set stores M(i, j). It panics if j <= i.
func (t *Table) Set(i, j int, v int32) {
	if j <= i {
		panic(fmt.Sprintf("mps: Set on empty interval (%d, %d)", i, j))
	}
	t.rows[i][j-i] = v
}

// Computed reports whether M(i, j) holds a value.
func (t *Table) Computed(i, j int) bool {
	return j <= i || t.rows[i][j-i] != Unset
}

// Root returns M(0, n-1), the optimum over the whole circle.
func (t *Table) Root() int32 {
	if len(t.rows) == 0 {
		return 0
	}
	return t.Get(0, len(t.rows)-1)
}
