// Package mps computes a maximum planar subset of chords on a circle.
//
// Given a [chord.Set] over 2N positions, the package finds the largest
// collection of pairwise non-crossing chords and reports one such
// collection in canonical order.
//
// # Recurrence
//
// M(i, j) is the largest non-crossing subset fully inside positions [i, j].
// With k the partner of j:
//
//	M(i, j) = 0                                        if j <= i
//	M(i, j) = M(i+1, j-1) + 1                          if k == i
//	M(i, j) = max(M(i, j-1), M(i, k-1)+1+M(k+1, j-1))  if i < k < j
//	M(i, j) = M(i, j-1)                                otherwise
//
// Ties between skipping position j and taking chord {k, j} go to skipping.
// [Traceback] applies the same rule, so the recovered set always has
// exactly M(0, 2N-1) chords.
//
// # Solvers
//
// Two strategies fill the same [Table]:
//
//   - [BottomUp] evaluates every interval in order of increasing length.
//   - [TopDown] evaluates only the intervals the root depends on, memoizing
//     results. Unreached cells stay [Unset].
//
// Both run in O(N²) time and space. Neither uses native recursion: the
// top-down solver and the traceback keep an explicit work stack, so deeply
// nested inputs cannot exhaust the goroutine stack.
//
// # Usage
//
//	res, err := mps.Solve(set, mps.Options{Method: mps.MethodTopDown})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Count)
//	for _, p := range res.Pairs {
//	    fmt.Println(p.Head, p.Tail)
//	}
//
// # Concurrency
//
// A [Table] and [Trace] belong to one run and are not safe for concurrent
// mutation. Independent runs share nothing and may execute in parallel.
package mps
