package io

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
)

// WriteResult writes the result file for count and pairs to w: the count on
// the first line, then one "head tail" line per chord in the given order.
func WriteResult(w io.Writer, count int, pairs []chord.Pair) error {
	bw := bufio.NewWriter(w)
	if err := writePairs(bw, count, pairs); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteChords writes s in chord file format, chords sorted by head and
// followed by the "0" terminator line.
func WriteChords(w io.Writer, s *chord.Set) error {
	bw := bufio.NewWriter(w)
	if err := writePairs(bw, s.Len(), s.Pairs()); err != nil {
		return err
	}
	if _, err := bw.WriteString("0\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// writePairs writes a header number followed by one line per pair.
func writePairs(bw *bufio.Writer, header int, pairs []chord.Pair) error {
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(header), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, p := range pairs {
		buf = strconv.AppendInt(buf[:0], int64(p.Head), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(p.Tail), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// ExportChords writes s to path in chord file format.
func ExportChords(path string, s *chord.Set) error {
	return create(path, func(w io.Writer) error { return WriteChords(w, s) })
}

// ExportResult writes the result file to path, creating or truncating it.
func ExportResult(path string, count int, pairs []chord.Pair) error {
	return create(path, func(w io.Writer) error { return WriteResult(w, count, pairs) })
}

// create writes a new file at path with write.
func create(path string, write func(io.Writer) error) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return f.Close()
}

// Result is a decoded result file.
type Result struct {
	Count int
	Pairs []chord.Pair
}

// ReadResult decodes a result file from r. It reads the count line and
// exactly that many chord lines; anything after them is ignored.
func ReadResult(r io.Reader) (*Result, error) {
	lr := newLineReader(r)

	head, err := lr.ints(1, "result count")
	if err != nil {
		return nil, invalid(err, "malformed result file")
	}
	count := head[0]
	if count < 0 {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput,
			&errors.LineError{Line: lr.line, Msg: "result count must be non-negative"},
			"malformed result file")
	}

	res := &Result{Count: count, Pairs: make([]chord.Pair, 0, min(count, 1<<16))}
	for range count {
		ab, err := lr.ints(2, "two positions")
		if err != nil {
			return nil, invalid(err, "malformed result file")
		}
		res.Pairs = append(res.Pairs, chord.Pair{Head: ab[0], Tail: ab[1]})
	}
	return res, nil
}

// ImportResult reads the result file at path. A path ending in ".json" is
// read as the document written by [WriteJSON].
func ImportResult(path string) (*Result, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return readJSONResult(f)
	}
	return ReadResult(f)
}
