package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mps/pkg/cache"
	"github.com/matzehuels/mps/pkg/chord"
	mpsio "github.com/matzehuels/mps/pkg/io"
	"github.com/matzehuels/mps/pkg/mps"
	"github.com/matzehuels/mps/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeSolution = "solution"
	keyTypeRender   = "render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options; each run allocates its own DP table.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → solve → render pipeline with caching.
// The render stage runs only when opts.Format is set.
func (r *Runner) Execute(ctx context.Context, source string, in io.Reader, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.NewString()}

	// Stage 1: Parse
	parseStart := time.Now()
	s, err := r.Parse(ctx, source, in)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Set = s
	result.InputHash = InputHash(s)
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.Positions = s.Len()
	result.Stats.Chords = s.Count()

	r.Logger.Debug("parsed chords",
		"run", result.ID,
		"positions", s.Len(),
		"chords", s.Count(),
		"duration", result.Stats.ParseTime)

	if err := opts.CheckSize(s); err != nil {
		return nil, err
	}

	// Stage 2: Solve
	solveStart := time.Now()
	sol, solveHit, err := r.solve(ctx, s, result.InputHash, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Solution = sol
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solved",
		"run", result.ID,
		"method", sol.Method,
		"count", sol.Count,
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	if opts.Format == "" {
		return result, nil
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifact, renderHit, err := r.render(ctx, s, result.InputHash, sol, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered diagram",
		"run", result.ID,
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse decodes a chord file, emitting parse hooks.
func (r *Runner) Parse(ctx context.Context, source string, in io.Reader) (*chord.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(ctx, source, in)
}

// SolveWithCacheInfo solves s with caching and returns cache hit info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, s *chord.Set, opts Options) (*mps.Result, bool, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return nil, false, err
	}
	if err := opts.CheckSize(s); err != nil {
		return nil, false, err
	}
	return r.solve(ctx, s, InputHash(s), opts)
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, s *chord.Set, opts Options) (*mps.Result, error) {
	sol, _, err := r.SolveWithCacheInfo(ctx, s, opts)
	return sol, err
}

func (r *Runner) solve(ctx context.Context, s *chord.Set, inputHash string, opts Options) (*mps.Result, bool, error) {
	cacheKey := r.Keyer.SolutionKey(inputHash, opts.SolutionKeyOpts())
	hooks := observability.Cache()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			sol, err := mpsio.UnmarshalResult(data)
			if err == nil {
				hooks.OnCacheHit(ctx, keyTypeSolution)
				return sol, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		hooks.OnCacheMiss(ctx, keyTypeSolution)
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	method := mps.Method(opts.Method)
	solveHooks := observability.Solve()
	solveHooks.OnSolveStart(ctx, opts.Method, s.Count())
	start := time.Now()
	sol, err := mps.Solve(s, mps.Options{Method: method, Seed: opts.Seed})
	if err != nil {
		solveHooks.OnSolveComplete(ctx, opts.Method, 0, time.Since(start), err)
		return nil, false, err
	}
	solveHooks.OnSolveComplete(ctx, opts.Method, sol.Count, time.Since(start), nil)

	if data, err := mpsio.MarshalResult(sol); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, opts.TTL); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			hooks.OnCacheSet(ctx, keyTypeSolution, len(data))
		}
	}

	return sol, false, nil
}

// RenderWithCacheInfo draws the chord diagram with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *chord.Set, sol *mps.Result, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if opts.Method == "" {
		opts.Method = string(sol.Method)
	}
	return r.render(ctx, s, InputHash(s), sol, opts)
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s *chord.Set, sol *mps.Result, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, s, sol, opts)
	return data, err
}

func (r *Runner) render(ctx context.Context, s *chord.Set, inputHash string, sol *mps.Result, opts Options) ([]byte, bool, error) {
	cacheKey := r.Keyer.RenderKey(inputHash, opts.RenderKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			hooks.OnCacheHit(ctx, keyTypeRender)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, keyTypeRender)
	}

	data, err := Render(ctx, s, sol, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, data, opts.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, keyTypeRender, len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
