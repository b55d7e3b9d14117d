// Package compare diffs two solver result files.
//
// Results from independent runs, or from the bottom-up and top-down
// solvers, are comparable line by line because chords are always written
// sorted by head. [Results] reports whether two results agree and names
// every line where they do not.
package compare

import (
	"fmt"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/io"
)

// LineDiff is one differing chord line. Index is the 0-based chord index
// (line Index+2 of the result file).
type LineDiff struct {
	Index int        `json:"index"`
	A     chord.Pair `json:"a"`
	B     chord.Pair `json:"b"`
}

// String formats the diff the way the comparison report prints it.
func (d LineDiff) String() string {
	return fmt.Sprintf("Edge %d is different: pair1: (%d, %d), pair2: (%d, %d)",
		d.Index, d.A.Head, d.A.Tail, d.B.Head, d.B.Tail)
}

// Report is the outcome of comparing two results.
type Report struct {
	CountA int        `json:"count_a"`
	CountB int        `json:"count_b"`
	Diffs  []LineDiff `json:"diffs"`
}

// SameCount reports whether both results selected the same number of chords.
func (r *Report) SameCount() bool { return r.CountA == r.CountB }

// Identical reports whether the results match exactly.
func (r *Report) Identical() bool { return r.SameCount() && len(r.Diffs) == 0 }

// Results compares a and b. When the counts differ the chord lines are not
// compared and Diffs is empty. A line present on only one side is a diff
// against the zero Pair, so results whose chord lists disagree in length
// never compare identical.
func Results(a, b *io.Result) *Report {
	rep := &Report{CountA: a.Count, CountB: b.Count, Diffs: []LineDiff{}}
	if !rep.SameCount() {
		return rep
	}
	for i := range max(len(a.Pairs), len(b.Pairs)) {
		pa, pb := pairAt(a.Pairs, i), pairAt(b.Pairs, i)
		if pa != pb || i >= len(a.Pairs) || i >= len(b.Pairs) {
			rep.Diffs = append(rep.Diffs, LineDiff{Index: i, A: pa, B: pb})
		}
	}
	return rep
}

func pairAt(pairs []chord.Pair, i int) chord.Pair {
	if i < len(pairs) {
		return pairs[i]
	}
	return chord.Pair{}
}

// Files reads and compares two result files. Either may be a JSON result
// document (see [io.ImportResult]).
func Files(pathA, pathB string) (*Report, error) {
	a, err := io.ImportResult(pathA)
	if err != nil {
		return nil, err
	}
	b, err := io.ImportResult(pathB)
	if err != nil {
		return nil, err
	}
	return Results(a, b), nil
}
