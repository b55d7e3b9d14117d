package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/mps/pkg/buildinfo"
	"github.com/matzehuels/mps/pkg/chord"
	"github.com/matzehuels/mps/pkg/compare"
	"github.com/matzehuels/mps/pkg/errors"
	mpsio "github.com/matzehuels/mps/pkg/io"
	"github.com/matzehuels/mps/pkg/pipeline"
	"github.com/matzehuels/mps/pkg/render"
)

// Content types for rendered diagrams.
var contentTypes = map[string]string{
	render.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	render.FormatSVG: "image/svg+xml",
	render.FormatPDF: "application/pdf",
	render.FormatPNG: "image/png",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Format = ""

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), "request", body, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setCacheHeader(w, res.CacheInfo.SolveHit)
	w.Header().Set("X-Run-Id", res.ID)
	if r.URL.Query().Get("output") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = mpsio.WriteResult(w, res.Solution.Count, res.Solution.Pairs)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = mpsio.WriteJSON(w, res.Solution, res.ID)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if opts.Format == "" {
		opts.Format = render.FormatSVG
	}

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), "request", body, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setCacheHeader(w, res.CacheInfo.RenderHit)
	w.Header().Set("X-Run-Id", res.ID)
	w.Header().Set("X-Chord-Count", strconv.Itoa(res.Solution.Count))
	w.Header().Set("Content-Type", contentTypes[opts.Format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifact)
}

// readBody reads the whole request body so that an oversized upload is
// reported as such rather than as a truncated chord file.
func readBody(r *http.Request) (*bytes.Reader, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// compareSide is one result in a compare request.
type compareSide struct {
	Count  int          `json:"count"`
	Chords []chord.Pair `json:"chords"`
}

// validate checks that the side lists exactly Count chords, as a result
// file must.
func (c *compareSide) validate(name string) error {
	if c.Count < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s.count must not be negative", name)
	}
	if len(c.Chords) != c.Count {
		return errors.New(errors.ErrCodeInvalidInput,
			"%s: count is %d but %d chords are listed", name, c.Count, len(c.Chords))
	}
	return nil
}

type compareRequest struct {
	A *compareSide `json:"a"`
	B *compareSide `json:"b"`
}

type compareResponse struct {
	ID        string `json:"id"`
	Identical bool   `json:"identical"`
	*compare.Report
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode compare request"))
		return
	}
	if req.A == nil || req.B == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "both \"a\" and \"b\" are required"))
		return
	}
	err := req.A.validate("a")
	if err == nil {
		err = req.B.validate("b")
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rep := compare.Results(
		&mpsio.Result{Count: req.A.Count, Pairs: req.A.Chords},
		&mpsio.Result{Count: req.B.Count, Pairs: req.B.Chords},
	)
	writeJSON(w, http.StatusOK, compareResponse{
		ID:        uuid.NewString(),
		Identical: rep.Identical(),
		Report:    rep,
	})
}

// options builds pipeline options from the server defaults and the
// request's query parameters.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.MaxChords = s.maxChords
	q := r.URL.Query()

	if v := q.Get("method"); v != "" {
		opts.Method = v
	}
	if v := q.Get("format"); v != "" {
		opts.Format = v
	}
	if v := q.Get("radius"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid radius: %q", v)
		}
		opts.Radius = f
	}
	for name, dst := range map[string]*bool{
		"labels":    &opts.Labels,
		"only_plan": &opts.OnlyPlan,
		"refresh":   &opts.Refresh,
	} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
			}
			*dst = b
		}
	}
	return opts, nil
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

// writeError maps an error to a status code and writes {code, error}.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: code, Error: message(err)})
}

// message is the user message of err plus its cause, which for parse
// errors names the offending line.
func message(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return errors.UserMessage(err)
}

func classify(err error) (int, errors.Code) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidInput
	}
	if stderrors.Is(err, pipeline.ErrTooManyChords) {
		return http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidInput
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, errors.ErrCodeTimeout
	}

	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidMethod, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest, code
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound, code
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented, code
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, code
	case "":
		return http.StatusInternalServerError, errors.ErrCodeInternal
	default:
		return http.StatusInternalServerError, code
	}
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
