package mps

import (
	"fmt"
	"strings"
)

// Interval is a DP subproblem key: positions i through j inclusive.
type Interval struct {
	I int `json:"i"`
	J int `json:"j"`
}

// String formats the interval as "(i, j)".
func (iv Interval) String() string {
	return fmt.Sprintf("(%d, %d)", iv.I, iv.J)
}

// traceHead is how many leading visits a Trace keeps.
const traceHead = 3

// Trace samples the subproblems a solver visits for progress display:
// the first three intervals evaluated, plus the root interval once the
// solver finishes. It never affects the result.
//
// The zero value is an empty trace ready for use.
type Trace struct {
	head    [traceHead]Interval
	n       int // filled head slots
	root    Interval
	hasRoot bool
	visits  int
}

// Visit records that the solver evaluated (i, j).
// Only the first three visits are kept; later ones are counted.
func (tr *Trace) Visit(i, j int) {
	if tr.n < traceHead {
		tr.head[tr.n] = Interval{I: i, J: j}
		tr.n++
	}
	tr.visits++
}

// Close records the root interval (0, n-1). For n == 0 there is no root
// and the trace is left as is.
func (tr *Trace) Close(n int) {
	if n == 0 {
		return
	}
	tr.root = Interval{I: 0, J: n - 1}
	tr.hasRoot = true
}

// Closed reports whether the root interval has been recorded.
func (tr *Trace) Closed() bool { return tr.hasRoot }

// Visits returns the total number of recorded visits.
func (tr *Trace) Visits() int { return tr.visits }

// Entries returns the kept intervals: the leading visits followed by the
// root, if closed.
func (tr *Trace) Entries() []Interval {
	out := make([]Interval, 0, traceHead+1)
	out = append(out, tr.head[:tr.n]...)
	if tr.hasRoot {
		out = append(out, tr.root)
	}
	return out
}

// String renders the trace as "(0, 1), (1, 2), (2, 3), ..., (0, 5)".
// The ellipsis separates the leading visits from the root.
func (tr *Trace) String() string {
	parts := make([]string, 0, traceHead+2)
	for _, iv := range tr.head[:tr.n] {
		parts = append(parts, iv.String())
	}
	if tr.hasRoot {
		parts = append(parts, "...", tr.root.String())
	}
	return strings.Join(parts, ", ")
}

// Restore rebuilds a trace from entries previously returned by Entries.
// The last entry is treated as the root when closed is true.
func Restore(entries []Interval, visits int, closed bool) Trace {
	var tr Trace
	if closed && len(entries) > 0 {
		tr.root = entries[len(entries)-1]
		tr.hasRoot = true
		entries = entries[:len(entries)-1]
	}
	for _, iv := range entries {
		if tr.n == traceHead {
			break
		}
		tr.head[tr.n] = iv
		tr.n++
	}
	tr.visits = visits
	return tr
}
