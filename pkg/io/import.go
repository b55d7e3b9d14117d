package io

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
)

// ReadChords decodes a chord file from r.
//
// ReadChords returns an INVALID_INPUT error if a token is not an integer,
// if the input ends before n/2 chords were read, or if the chords do not
// form a valid pairing of n positions (see [chord.New]). Nothing after the
// last chord line is read. ReadChords does not close r.
func ReadChords(r io.Reader) (*chord.Set, error) {
	lr := newLineReader(r)

	head, err := lr.ints(1, "position count")
	if err != nil {
		return nil, invalid(err, "malformed chord file")
	}
	n := head[0]
	if n < 0 || n%2 != 0 {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput,
			&errors.LineError{Line: lr.line, Msg: "position count must be a non-negative even number"},
			"malformed chord file")
	}

	pairs := make([]chord.Pair, n/2)
	for c := range pairs {
		ab, err := lr.ints(2, "two positions")
		if err != nil {
			return nil, invalid(err, "malformed chord file")
		}
		pairs[c] = chord.Pair{Head: ab[0], Tail: ab[1]}
	}

	return chord.New(n, pairs)
}

// ImportChords reads the chord file at path.
// A missing file yields a FILE_NOT_FOUND error.
func ImportChords(path string) (*chord.Set, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadChords(f)
}

// open wraps os.Open with structured errors.
func open(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	return f, nil
}

// invalid wraps parse failures as INVALID_INPUT. Read errors from the
// underlying reader are reported as INTERNAL_ERROR.
func invalid(err error, msg string) error {
	var le *errors.LineError
	if stderrors.As(err, &le) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", msg)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "read input")
}
