package chord

import (
	"slices"

	"github.com/matzehuels/mps/pkg/errors"
)

// Crosses reports whether chords a and b interleave: exactly one endpoint
// of b lies strictly between the endpoints of a. Chords sharing an
// endpoint never cross.
func Crosses(a, b Pair) bool {
	lo, hi := min(a.Head, a.Tail), max(a.Head, a.Tail)
	inside := func(p int) bool { return lo < p && p < hi }
	return inside(b.Head) != inside(b.Tail) && b.Head != lo && b.Head != hi && b.Tail != lo && b.Tail != hi
}

// NonCrossing returns an INVALID_INPUT error naming the first crossing
// pair of chords, or nil if no two chords in pairs cross.
//
// Chords are checked with a sweep over endpoints: opening an interval pushes
// it on a stack, and closing it must pop the same interval, otherwise some
// chord opened inside it closes outside. This runs in O(k log k) for k chords.
// Endpoints are expected to be distinct across pairs, as they are for any
// selection from a [Set].
func NonCrossing(pairs []Pair) error {
	type event struct {
		pos   int
		chord int
		open  bool
	}
	events := make([]event, 0, 2*len(pairs))
	for i, p := range pairs {
		if p.Head == p.Tail {
			return errors.New(errors.ErrCodeInvalidInput, "chord (%d, %d) has equal endpoints", p.Head, p.Tail)
		}
		lo, hi := min(p.Head, p.Tail), max(p.Head, p.Tail)
		events = append(events, event{lo, i, true}, event{hi, i, false})
	}
	// Closing events sort first so chords that only touch at an endpoint
	// are not reported.
	slices.SortFunc(events, func(a, b event) int {
		if a.pos != b.pos {
			return a.pos - b.pos
		}
		if a.open == b.open {
			return 0
		}
		if a.open {
			return 1
		}
		return -1
	})

	stack := make([]int, 0, len(pairs))
	for _, e := range events {
		if e.open {
			stack = append(stack, e.chord)
			continue
		}
		if top := stack[len(stack)-1]; top != e.chord {
			a, b := pairs[top], pairs[e.chord]
			return errors.New(errors.ErrCodeInvalidInput, "chords (%d, %d) and (%d, %d) cross", a.Head, a.Tail, b.Head, b.Tail)
		}
		stack = stack[:len(stack)-1]
	}
	return nil
}
