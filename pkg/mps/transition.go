package mps

import "github.com/matzehuels/mps/pkg/chord"

// transition evaluates M(i, j) for j > i from already computed cells.
// The chord {k, j} is taken only when it strictly beats skipping j.
func transition(s *chord.Set, t *Table, i, j int) int32 {
	k := s.Partner(j)
	switch {
	case k == i:
		return t.Get(i+1, j-1) + 1
	case i < k && k < j:
		skip := t.Get(i, j-1)
		if take := t.Get(i, k-1) + 1 + t.Get(k+1, j-1); take > skip {
			return take
		}
		return skip
	default:
		return t.Get(i, j-1)
	}
}

// takes reports whether the optimum for (i, j) uses the chord ending at j.
// It recomputes the decision from the table, mirroring transition.
func takes(s *chord.Set, t *Table, i, j int) bool {
	if s.Partner(j) == i {
		return true
	}
	return t.Get(i, j) > t.Get(i, j-1)
}
