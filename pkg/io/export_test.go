package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
	"github.com/matzehuels/mps/pkg/mps"
)

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResult(&buf, 3, []chord.Pair{{Head: 0, Tail: 1}, {Head: 2, Tail: 5}, {Head: 3, Tail: 4}})
	require.NoError(t, err)
	assert.Equal(t, "3\n0 1\n2 5\n3 4\n", buf.String())
}

func TestWriteResultEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, 0, nil))
	assert.Equal(t, "0\n", buf.String())
}

func TestReadResult(t *testing.T) {
	res, err := ReadResult(strings.NewReader("2\n0 3\n1 2\ntrailing\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []chord.Pair{{Head: 0, Tail: 3}, {Head: 1, Tail: 2}}, res.Pairs)
}

func TestReadResultErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":     "",
		"negative":  "-1\n",
		"truncated": "2\n0 3\n",
		"garbage":   "1\na b\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadResult(strings.NewReader(input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
		})
	}
}

func TestExportImportResult(t *testing.T) {
	s, err := chord.New(6, []chord.Pair{{Head: 0, Tail: 1}, {Head: 5, Tail: 2}, {Head: 3, Tail: 4}})
	require.NoError(t, err)
	res, err := mps.Solve(s, mps.Options{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "case.out")
	require.NoError(t, ExportResult(path, res.Count, res.Pairs))

	got, err := ImportResult(path)
	require.NoError(t, err)
	assert.Equal(t, res.Count, got.Count)
	assert.Equal(t, res.Pairs, got.Pairs)
}

func TestExportResultBadDirectory(t *testing.T) {
	err := ExportResult(filepath.Join(t.TempDir(), "missing", "case.out"), 0, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}

func TestWriteChordsRoundTrip(t *testing.T) {
	s, err := chord.New(6, []chord.Pair{{Head: 4, Tail: 0}, {Head: 1, Tail: 3}, {Head: 2, Tail: 5}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteChords(&buf, s))
	assert.Equal(t, "6\n1 3\n2 5\n4 0\n0\n", buf.String())

	back, err := ReadChords(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Pairs(), back.Pairs())
}

func TestExportChords(t *testing.T) {
	s, err := chord.New(4, []chord.Pair{{Head: 0, Tail: 3}, {Head: 1, Tail: 2}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, ExportChords(path, s))

	back, err := ImportChords(path)
	require.NoError(t, err)
	assert.Equal(t, s.Pairs(), back.Pairs())
}
