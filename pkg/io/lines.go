package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/mps/pkg/errors"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// lineReader yields the integer fields of non-blank lines.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &lineReader{sc: sc}
}

// ints returns the next non-blank line parsed as exactly want integers.
// At end of input it returns a LineError describing what was expected.
func (lr *lineReader) ints(want int, what string) ([]int, error) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return nil, &errors.LineError{Line: lr.line, Msg: "expected " + what}
		}
		out := make([]int, want)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &errors.LineError{Line: lr.line, Msg: "invalid integer " + strconv.Quote(f)}
			}
			out[i] = v
		}
		return out, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	return nil, &errors.LineError{Msg: "unexpected end of input, expected " + what}
}
