package chord

import "math/rand/v2"

// Random returns a uniformly random pairing of 2*count positions.
// The head of each chord is picked at random too, so heads are not
// always the smaller endpoint. Equal rng states give equal sets.
func Random(count int, rng *rand.Rand) *Set {
	n := 2 * count
	perm := rng.Perm(n)

	s := &Set{
		partner: make([]int, n),
		head:    make([]bool, n),
	}
	for c := 0; c < count; c++ {
		a, b := perm[2*c], perm[2*c+1]
		s.partner[a] = b
		s.partner[b] = a
		s.head[a] = true
	}
	return s
}
