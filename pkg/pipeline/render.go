package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/mps"
	"github.com/matzehuels/mps/pkg/observability"
	"github.com/matzehuels/mps/pkg/render/diagram"
)

// Render draws the chord diagram of s with the planar subset of sol
// highlighted, in opts.Format.
func Render(ctx context.Context, s *chord.Set, sol *mps.Result, opts Options) ([]byte, error) {
	hooks := observability.Solve()
	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()

	dot := diagram.ToDOT(s, sol.Pairs, opts.DiagramOptions())
	data, err := diagram.Render(ctx, dot, opts.Format)

	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	return data, err
}
