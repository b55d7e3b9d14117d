package mps

import "github.com/matzehuels/mps/pkg/chord"

// frame is a pending top-down evaluation. An expanded frame has already
// pushed its dependencies and is finished once it reaches the stack top
// again.
type frame struct {
	i, j     int
	expanded bool
}

// TopDown fills a fresh table for s on demand, starting from the root
// interval. Only cells the root depends on are computed; the rest stay
// [Unset].
//
// The traversal is the one memoized recursion would perform: (i, j-1)
// first, then (i, k-1) and (k+1, j-1) when the partner k of j lies inside,
// or (i+1, j-1) alone when k == i. An explicit stack replaces the call
// stack, so depth is bounded by memory rather than goroutine stack size.
func TopDown(s *chord.Set, tr *Trace) *Table {
	n := s.Len()
	t := NewTable(n, Unset)
	if n == 0 {
		return t
	}

	stack := []frame{{i: 0, j: n - 1}}
	push := func(i, j int) {
		if !t.Computed(i, j) {
			stack = append(stack, frame{i: i, j: j})
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		i, j := top.i, top.j

		if top.expanded {
			t.Set(i, j, transition(s, t, i, j))
			stack = stack[:len(stack)-1]
			continue
		}
		if t.Computed(i, j) {
			// Reached through another parent before this entry surfaced.
			stack = stack[:len(stack)-1]
			continue
		}

		tr.Visit(i, j)
		top.expanded = true

		// Pushed in reverse so the first dependency is evaluated first.
		// top is not used past this point: push may reallocate the stack.
		switch k := s.Partner(j); {
		case k == i:
			push(i+1, j-1)
		case i < k && k < j:
			push(k+1, j-1)
			push(i, k-1)
			push(i, j-1)
		default:
			push(i, j-1)
		}
	}

	tr.Close(n)
	return t
}
