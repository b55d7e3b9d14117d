package mps

import "math/rand/v2"

// DefaultSeed seeds the pivot generator when none is supplied.
const DefaultSeed = uint64(42)

// newRand returns a PCG-backed generator for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Sort orders data ascending in place using quicksort with a random pivot
// and Hoare partitioning. A nil rng uses [DefaultSeed].
//
// The smaller partition is sorted recursively and the larger one in the
// loop, bounding recursion depth by O(log n) for any pivot sequence.
func Sort(data []int, rng *rand.Rand) {
	if rng == nil {
		rng = newRand(DefaultSeed)
	}
	qsort(data, 0, len(data)-1, rng)
}

func qsort(data []int, low, high int, rng *rand.Rand) {
	for low < high {
		p := partition(data, low, high, rng)
		if p-low < high-p {
			qsort(data, low, p, rng)
			low = p + 1
		} else {
			qsort(data, p+1, high, rng)
			high = p
		}
	}
}

// partition moves a random pivot to data[low] and splits [low, high] so
// that every element of [low, p] is <= every element of [p+1, high].
// The returned p always satisfies low <= p < high.
func partition(data []int, low, high int, rng *rand.Rand) int {
	r := low + rng.IntN(high-low+1)
	data[low], data[r] = data[r], data[low]

	pivot := data[low]
	i, j := low-1, high+1
	for {
		for j--; data[j] > pivot; j-- {
		}
		for i++; data[i] < pivot; i++ {
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}
