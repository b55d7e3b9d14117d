package mps

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mps/pkg/chord"
)

// mustSet builds a chord set or fails the test.
func mustSet(t testing.TB, n int, pairs ...chord.Pair) *chord.Set {
	t.Helper()
	s, err := chord.New(n, pairs)
	require.NoError(t, err)
	return s
}

// randomSet returns a uniformly shuffled pairing of 2*chords positions.
func randomSet(t testing.TB, rng *rand.Rand, chords int) *chord.Set {
	t.Helper()
	n := 2 * chords
	perm := rng.Perm(n)
	pairs := make([]chord.Pair, chords)
	for c := range pairs {
		pairs[c] = chord.Pair{Head: perm[2*c], Tail: perm[2*c+1]}
	}
	return mustSet(t, n, pairs...)
}

// bruteForce returns the optimum by trying every subset of chords.
func bruteForce(s *chord.Set) int {
	all := s.Pairs()
	best := 0
	for mask := 0; mask < 1<<len(all); mask++ {
		var pick []chord.Pair
		for c := range all {
			if mask&(1<<c) != 0 {
				pick = append(pick, all[c])
			}
		}
		if len(pick) > best && chord.NonCrossing(pick) == nil {
			best = len(pick)
		}
	}
	return best
}
