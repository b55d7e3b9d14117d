package chord

import "github.com/matzehuels/mps/pkg/errors"

// Pair is a chord reported head-first.
type Pair struct {
	Head int `json:"head"`
	Tail int `json:"tail"`
}

// Set is an immutable pairing of 2N positions into N chords.
type Set struct {
	partner []int
	head    []bool
}

// New builds a Set over n positions from the given chords.
// The first endpoint of each pair becomes the chord's head.
//
// New returns an INVALID_INPUT error when n is odd or negative, when the
// number of pairs is not n/2, when a position is out of range, paired with
// itself, or cited by more than one pair.
func New(n int, pairs []Pair) (*Set, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "position count must be non-negative, got %d", n)
	}
	if n%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "position count must be even, got %d", n)
	}
	if len(pairs) != n/2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "expected %d chords for %d positions, got %d", n/2, n, len(pairs))
	}

	s := &Set{
		partner: make([]int, n),
		head:    make([]bool, n),
	}
	for i := range s.partner {
		s.partner[i] = -1
	}

	for idx, p := range pairs {
		if p.Head < 0 || p.Head >= n || p.Tail < 0 || p.Tail >= n {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chord %d (%d, %d): position out of range [0, %d)", idx, p.Head, p.Tail, n)
		}
		if p.Head == p.Tail {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chord %d: position %d paired with itself", idx, p.Head)
		}
		if s.partner[p.Head] != -1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chord %d: position %d already paired with %d", idx, p.Head, s.partner[p.Head])
		}
		if s.partner[p.Tail] != -1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chord %d: position %d already paired with %d", idx, p.Tail, s.partner[p.Tail])
		}
		s.partner[p.Head] = p.Tail
		s.partner[p.Tail] = p.Head
		s.head[p.Head] = true
	}

	// n/2 disjoint pairs always cover all n positions, so no position can be
	// left unpaired here.
	return s, nil
}

// Len returns the number of positions (2N).
func (s *Set) Len() int { return len(s.partner) }

// Count returns the number of chords (N).
func (s *Set) Count() int { return len(s.partner) / 2 }

// Partner returns the other endpoint of the chord through p.
func (s *Set) Partner(p int) int { return s.partner[p] }

// IsHead reports whether p is the head endpoint of its chord.
func (s *Set) IsHead(p int) bool { return s.head[p] }

// HeadOf returns the head endpoint of the chord through p.
func (s *Set) HeadOf(p int) int {
	if s.head[p] {
		return p
	}
	return s.partner[p]
}

// PairOf returns the chord through p, head first.
func (s *Set) PairOf(p int) Pair {
	h := s.HeadOf(p)
	return Pair{Head: h, Tail: s.partner[h]}
}

// Pairs returns every chord of the set, sorted by head.
func (s *Set) Pairs() []Pair {
	out := make([]Pair, 0, s.Count())
	for p, isHead := range s.head {
		if isHead {
			out = append(out, Pair{Head: p, Tail: s.partner[p]})
		}
	}
	return out
}

// Contains reports whether p is one of the set's chords with the same head.
func (s *Set) Contains(p Pair) bool {
	if p.Head < 0 || p.Head >= len(s.partner) {
		return false
	}
	return s.head[p.Head] && s.partner[p.Head] == p.Tail
}

// Verify checks that pairs is a non-crossing selection of distinct chords
// from s. It returns nil for an empty selection.
func (s *Set) Verify(pairs []Pair) error {
	seen := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		if !s.Contains(p) {
			return errors.New(errors.ErrCodeInvalidInput, "(%d, %d) is not a chord of the set", p.Head, p.Tail)
		}
		if seen[p.Head] {
			return errors.New(errors.ErrCodeInvalidInput, "chord (%d, %d) selected twice", p.Head, p.Tail)
		}
		seen[p.Head] = true
	}
	return NonCrossing(pairs)
}
