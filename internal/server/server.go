// Package server exposes the solver over HTTP.
//
// Routes:
//
//	GET  /healthz       liveness and build version
//	POST /v1/solve      chord file in, JSON result out (?method=bu|td, ?output=text)
//	POST /v1/render     chord file in, diagram out (?format=svg|dot|png|pdf)
//	POST /v1/compare    two JSON results in, comparison report out
//
// Every request is an independent run with its own DP table, so requests
// are served concurrently. Results are shared across requests and server
// instances through the runner's cache.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mps/pkg/pipeline"
)

// DefaultMaxChords bounds request inputs when [WithMaxChords] is not
// given: 10000 chords need a table of about 800 MB.
const DefaultMaxChords = 10000

// Server serves the HTTP API.
type Server struct {
	runner       *pipeline.Runner
	logger       *log.Logger
	defaults     pipeline.Options
	maxBodyBytes int64
	maxChords    int
	readTimeout  time.Duration
	writeTimeout time.Duration
	router       chi.Router
}

// Option applies a configuration option to a Server.
type Option func(s *Server)

// WithLogger sets the request logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaults sets the pipeline options used when a request leaves a
// parameter unset.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) {
		s.defaults = opts
	}
}

// WithMaxBodyBytes caps request body size. Larger bodies get 413.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithMaxChords caps the number of chords a solve or render request may
// carry. The DP table grows with the square of the point count, so an
// unbounded request could exhaust the memory of the whole process.
// Larger inputs get 413 before any table is allocated.
func WithMaxChords(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxChords = n
		}
	}
}

// WithTimeouts sets the http.Server read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	}
}

// New creates a Server backed by runner.
func New(runner *pipeline.Runner, options ...Option) *Server {
	s := &Server{
		runner:       runner,
		logger:       log.Default(),
		maxBodyBytes: 64 << 20,
		maxChords:    DefaultMaxChords,
		readTimeout:  30 * time.Second,
		writeTimeout: 5 * time.Minute,
	}
	for _, o := range options {
		o(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(s.limitBody)
		r.Post("/solve", s.handleSolve)
		r.Post("/render", s.handleRender)
		r.Post("/compare", s.handleCompare)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully, letting in-flight solves finish for up to 10 seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
