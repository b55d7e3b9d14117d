package mps

import "github.com/matzehuels/mps/pkg/chord"

// Traceback recovers one optimal chord selection from a completed table.
// It returns the head endpoint of every selected chord, in discovery order;
// the result has exactly t.Root() entries.
//
// The walk reads the table only. It follows the decision transition made
// at each interval: the chord {i, j} when i and j are partners, the chord
// {k, j} when taking it strictly beat skipping j, and otherwise the
// interval without j.
func Traceback(s *chord.Set, t *Table) []int {
	n := s.Len()
	if n == 0 {
		return nil
	}

	heads := make([]int, 0, t.Root())
	stack := []Interval{{I: 0, J: n - 1}}
	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := iv.I, iv.J

		if t.Get(i, j) == 0 {
			continue
		}
		if !takes(s, t, i, j) {
			stack = append(stack, Interval{I: i, J: j - 1})
			continue
		}

		heads = append(heads, s.HeadOf(j))
		if k := s.Partner(j); k == i {
			stack = append(stack, Interval{I: i + 1, J: j - 1})
		} else {
			// (i, k-1) is popped first.
			stack = append(stack, Interval{I: k + 1, J: j - 1}, Interval{I: i, J: k - 1})
		}
	}
	return heads
}
