package mps

import "github.com/matzehuels/mps/pkg/chord"

// BottomUp fills a fresh table for s by increasing interval length, then
// by increasing left endpoint. Every dependency of (i, j) is a strictly
// shorter interval, so it is already final when (i, j) is evaluated.
func BottomUp(s *chord.Set, tr *Trace) *Table {
	n := s.Len()
	t := NewTable(n, 0)
	for length := 1; length < n; length++ {
		for i := 0; i+length < n; i++ {
			j := i + length
			t.Set(i, j, transition(s, t, i, j))
			tr.Visit(i, j)
		}
	}
	tr.Close(n)
	return t
}
