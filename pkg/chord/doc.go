// Package chord models a set of chords drawn between labeled points on a circle.
//
// # Overview
//
// A chord set over n = 2N positions pairs every position with exactly one
// other position. The pairing is a fixed-point-free involution:
//
//	partner[partner[p]] == p  and  partner[p] != p
//
// Each chord has a designated head endpoint, the one listed first in the
// input file. Chords are reported head-first as a [Pair].
//
// # Crossing
//
// Two chords {a, b} and {c, d} cross when exactly one of c, d lies strictly
// between a and b. Because the positions are fixed, the test is the same on
// the circle and on the line obtained by cutting the circle at position 0.
// [Crosses] implements the test and [NonCrossing] checks a whole list.
//
// # Construction
//
// Use [New] with the position count and the chord list. New rejects any
// input that does not form a valid pairing, so every [Set] in circulation
// satisfies the involution invariant:
//
//	s, err := chord.New(4, []chord.Pair{{Head: 0, Tail: 3}, {Head: 1, Tail: 2}})
//
// A Set is immutable after construction and safe for concurrent readers.
package chord
