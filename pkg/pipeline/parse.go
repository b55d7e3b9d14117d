package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/matzehuels/mps/pkg/cache"
	"github.com/matzehuels/mps/pkg/chord"
	mpsio "github.com/matzehuels/mps/pkg/io"
	"github.com/matzehuels/mps/pkg/observability"
)

// Parse decodes a chord file. source names the input in logs and hooks.
func Parse(ctx context.Context, source string, r io.Reader) (*chord.Set, error) {
	hooks := observability.Solve()
	hooks.OnParseStart(ctx, source)
	start := time.Now()

	s, err := mpsio.ReadChords(r)
	if err != nil {
		hooks.OnParseComplete(ctx, source, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, source, s.Count(), time.Since(start), nil)
	return s, nil
}

// InputHash returns the SHA-256 of the canonical chord file for s.
// Inputs that differ only in whitespace, chord order or a trailing
// terminator hash the same.
func InputHash(s *chord.Set) string {
	var buf bytes.Buffer
	_ = mpsio.WriteChords(&buf, s) // writes to a bytes.Buffer cannot fail
	return cache.Hash(buf.Bytes())
}
