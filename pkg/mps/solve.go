package mps

import (
	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
)

// Method selects the DP evaluation order.
type Method string

const (
	// MethodBottomUp tabulates every interval by increasing length.
	MethodBottomUp Method = "bu"
	// MethodTopDown memoizes from the root interval inward.
	MethodTopDown Method = "td"
)

// DefaultMethod is used when no method is selected.
const DefaultMethod = MethodTopDown

// Methods lists the supported methods in display order.
var Methods = []Method{MethodBottomUp, MethodTopDown}

// ParseMethod converts a method identifier into a Method.
// The empty string selects [DefaultMethod].
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "":
		return DefaultMethod, nil
	case MethodBottomUp, MethodTopDown:
		return Method(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidMethod, "invalid method: %q (must be one of: bu, td)", s)
	}
}

// Describe returns a human-readable name for the method.
func (m Method) Describe() string {
	switch m {
	case MethodBottomUp:
		return "bottom-up DP"
	case MethodTopDown:
		return "top-down DP"
	default:
		return string(m)
	}
}

// Options configures [Solve].
type Options struct {
	// Method selects the solver. Empty means [DefaultMethod].
	Method Method
	// Seed drives pivot selection in the canonical sort. Zero means
	// [DefaultSeed]. The sorted output does not depend on it.
	Seed uint64
}

// Result is the outcome of one run.
type Result struct {
	// Count is the size of a maximum planar subset.
	Count int `json:"count"`
	// Pairs is one optimal subset, sorted ascending by head.
	Pairs []chord.Pair `json:"chords"`
	// Method is the solver that produced the result.
	Method Method `json:"method"`
	// Trace samples the subproblems the solver visited.
	Trace Trace `json:"-"`
}

// Solve computes a maximum planar subset of s.
func Solve(s *chord.Set, opts Options) (*Result, error) {
	m, err := ParseMethod(string(opts.Method))
	if err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	var tr Trace
	var t *Table
	switch m {
	case MethodBottomUp:
		t = BottomUp(s, &tr)
	default:
		t = TopDown(s, &tr)
	}

	heads := Traceback(s, t)
	if len(heads) != int(t.Root()) {
		return nil, errors.New(errors.ErrCodeInternal, "traceback recovered %d chords, table optimum is %d", len(heads), t.Root())
	}
	Sort(heads, newRand(seed))

	pairs := make([]chord.Pair, len(heads))
	for i, h := range heads {
		pairs[i] = s.PairOf(h)
	}

	return &Result{
		Count:  len(pairs),
		Pairs:  pairs,
		Method: m,
		Trace:  tr,
	}, nil
}
