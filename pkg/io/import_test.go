package io

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
)

func TestReadChords(t *testing.T) {
	s, err := ReadChords(strings.NewReader("6\n0 1\n5 2\n3 4\n0\n"))
	require.NoError(t, err)

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, []chord.Pair{{Head: 0, Tail: 1}, {Head: 3, Tail: 4}, {Head: 5, Tail: 2}}, s.Pairs())
	assert.True(t, s.IsHead(5), "first position of a line is the head")
}

func TestReadChordsTolerantWhitespace(t *testing.T) {
	s, err := ReadChords(strings.NewReader("\n 4 \n\n0   3\r\n\t1 2"))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count())
}

func TestReadChordsEmpty(t *testing.T) {
	s, err := ReadChords(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestReadChordsErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int // 0: no line information expected
	}{
		{"empty input", "", 0},
		{"non-numeric count", "six\n", 1},
		{"odd count", "3\n0 1\n", 1},
		{"negative count", "-2\n", 1},
		{"count with extra field", "4 4\n", 1},
		{"chords on the count line", "4 0 1 2 3\n", 1},
		{"chord split across lines", "2\n0\n1\n", 2},
		{"non-numeric position", "2\n0 x\n", 2},
		{"single field", "2\n0\n", 2},
		{"truncated", "4\n0 1\n", 0},
		{"duplicate position", "4\n0 1\n1 2\n", -1},
		{"out of range", "2\n0 2\n", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadChords(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)

			var le *errors.LineError
			if tt.wantLine >= 0 && assert.True(t, stderrors.As(err, &le), "want LineError cause") {
				assert.Equal(t, tt.wantLine, le.Line)
			}
		})
	}
}

func TestImportChords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.in")
	require.NoError(t, os.WriteFile(path, []byte("4\n0 3\n1 2\n"), 0644))

	s, err := ImportChords(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count())
}

func TestImportChordsMissingFile(t *testing.T) {
	_, err := ImportChords(filepath.Join(t.TempDir(), "missing.in"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestImportChordsInvalidPath(t *testing.T) {
	_, err := ImportChords("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}
