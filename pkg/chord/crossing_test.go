package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrosses(t *testing.T) {
	tests := []struct {
		name string
		a, b Pair
		want bool
	}{
		{"interleaved", Pair{0, 2}, Pair{1, 3}, true},
		{"interleaved reversed", Pair{2, 0}, Pair{3, 1}, true},
		{"nested", Pair{0, 3}, Pair{1, 2}, false},
		{"disjoint", Pair{0, 1}, Pair{2, 3}, false},
		{"shared endpoint", Pair{0, 2}, Pair{2, 4}, false},
		{"outer wraps", Pair{1, 2}, Pair{0, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Crosses(tt.a, tt.b))
			assert.Equal(t, tt.want, Crosses(tt.b, tt.a), "crossing is symmetric")
		})
	}
}

func TestNonCrossing(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []Pair
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", []Pair{{0, 1}}, false},
		{"nested", []Pair{{0, 3}, {1, 2}}, false},
		{"siblings", []Pair{{0, 1}, {2, 5}, {3, 4}}, false},
		{"tail first", []Pair{{5, 2}, {4, 3}}, false},
		{"crossing", []Pair{{0, 2}, {1, 3}}, true},
		{"deep crossing", []Pair{{0, 9}, {1, 4}, {2, 3}, {5, 8}, {6, 10}}, true},
		{"degenerate", []Pair{{1, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NonCrossing(tt.pairs)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNonCrossingAgreesWithCrosses(t *testing.T) {
	pairs := []Pair{{0, 5}, {1, 3}, {2, 7}, {4, 6}, {8, 9}}
	for i := range pairs {
		for j := i + 1; j < len(pairs); j++ {
			err := NonCrossing([]Pair{pairs[i], pairs[j]})
			assert.Equal(t, Crosses(pairs[i], pairs[j]), err != nil, "%v vs %v", pairs[i], pairs[j])
		}
	}
}
