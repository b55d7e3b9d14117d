// Package pipeline runs the parse → solve → render pipeline for chord sets.
//
// The CLI and the HTTP server both go through a [Runner], so caching,
// logging and instrumentation behave the same at every entry point.
//
// # Stages
//
//  1. Parse: decode a chord file into a [chord.Set]
//  2. Solve: fill the DP table, trace back one optimal subset, sort it
//  3. Render: draw the chord diagram (optional, only when a format is set)
//
// Solve and render results are cached under keys derived from the SHA-256
// of the canonical chord file, so reformatting an input file does not
// defeat the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, "input.txt", f, pipeline.Options{Method: "bu"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Solution.Count)
//
// Run individual stages:
//
//	s, err := runner.Parse(ctx, "input.txt", f)
//	sol, hit, err := runner.SolveWithCacheInfo(ctx, s, opts)
//	svg, hit, err := runner.RenderWithCacheInfo(ctx, s, sol, opts)
package pipeline

import (
	stderrors "errors"
	"time"

	"github.com/matzehuels/mps/pkg/cache"
	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/errors"
	"github.com/matzehuels/mps/pkg/mps"
	"github.com/matzehuels/mps/pkg/render"
	"github.com/matzehuels/mps/pkg/render/diagram"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Method  string `json:"method,omitempty"`
	Seed    uint64 `json:"seed,omitempty"`
	Refresh bool   `json:"refresh,omitempty"` // Ignore cached results (still writes them)

	// Render options. An empty Format skips the render stage.
	Format   string  `json:"format,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	OnlyPlan bool    `json:"only_plan,omitempty"`

	// TTL bounds how long results stay cached. Zero means cache.DefaultTTL.
	TTL time.Duration `json:"-"`

	// MaxChords rejects larger inputs before solving. Zero means no limit.
	MaxChords int `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ErrTooManyChords is the cause of errors returned for inputs above
// Options.MaxChords.
var ErrTooManyChords = stderrors.New("too many chords")

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and API responses.
	ID string

	// Set is the parsed chord set.
	Set *chord.Set

	// InputHash is the content hash of the canonical chord file.
	InputHash string

	// Solution is the maximum planar subset with its trace.
	Solution *mps.Result

	// Artifact is the rendered diagram, if a format was requested.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Positions  int
	Chords     int
	ParseTime  time.Duration
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solution came from cache
	RenderHit bool // Whether the artifact came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if o.Format != "" {
		if err := o.ValidateForRender(); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ValidateForSolve validates the method and sets solve defaults.
func (o *Options) ValidateForSolve() error {
	m, err := mps.ParseMethod(o.Method)
	if err != nil {
		return err
	}
	o.Method = string(m)
	if o.Seed == 0 {
		o.Seed = mps.DefaultSeed
	}
	o.setTTLDefault()
	return nil
}

// ValidateForRender validates the output format and sets render defaults.
// An empty format selects SVG.
func (o *Options) ValidateForRender() error {
	if o.Format == "" {
		o.Format = render.FormatSVG
	}
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	o.setTTLDefault()
	return nil
}

// CheckSize rejects s when it has more chords than o.MaxChords allows.
func (o *Options) CheckSize(s *chord.Set) error {
	if o.MaxChords > 0 && s.Count() > o.MaxChords {
		return errors.Wrap(errors.ErrCodeInvalidInput, ErrTooManyChords,
			"%d chords exceed the limit of %d", s.Count(), o.MaxChords)
	}
	return nil
}

func (o *Options) setTTLDefault() {
	if o.TTL == 0 {
		o.TTL = cache.DefaultTTL
	}
}

// SolutionKeyOpts returns cache key options for the solve stage.
// The seed is left out: it never changes the sorted output.
func (o *Options) SolutionKeyOpts() cache.SolutionKeyOpts {
	return cache.SolutionKeyOpts{Method: o.Method}
}

// RenderKeyOpts returns cache key options for the render stage.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:   o.Format,
		Method:   o.Method,
		Radius:   o.Radius,
		Labels:   o.Labels,
		OnlyPlan: o.OnlyPlan,
	}
}

// DiagramOptions returns the options passed to the diagram renderer.
func (o *Options) DiagramOptions() diagram.Options {
	return diagram.Options{
		Radius:   o.Radius,
		Labels:   o.Labels,
		OnlyPlan: o.OnlyPlan,
	}
}
