// Package io reads chord sets and reads and writes solver results.
//
// # Chord Format
//
// Chord files are plain text. The first line holds the position count n,
// which must be even. Each of the following n/2 lines holds one chord as
// two 0-indexed positions; the first one is the chord's head:
//
//	6
//	0 1
//	2 5
//	3 4
//	0
//
// Lines after the last chord are ignored, so the conventional trailing "0"
// terminator is accepted. Blank lines are skipped everywhere.
//
// # Result Format
//
// Result files start with the size of the selected subset, followed by one
// line per chord: the head endpoint and its partner, sorted by head:
//
//	3
//	0 1
//	2 5
//	3 4
//
// # JSON
//
// [WriteJSON] and [ReadJSON] encode a result together with its subproblem
// trace. The HTTP API answers with this document and the result cache
// stores it:
//
//	{
//	  "count": 3,
//	  "method": "td",
//	  "chords": [{"head": 0, "tail": 1}, ...],
//	  "trace": [{"i": 0, "j": 5}, ...],
//	  "visits": 6
//	}
//
// # Errors
//
// Malformed input yields an [errors.ErrCodeInvalidInput] error whose cause
// is an [errors.LineError] naming the offending line. A missing file yields
// [errors.ErrCodeFileNotFound].
package io
