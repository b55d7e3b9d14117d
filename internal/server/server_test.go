package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mps/pkg/cache"
	"github.com/matzehuels/mps/pkg/errors"
	"github.com/matzehuels/mps/pkg/pipeline"
)

const nestedInput = "6\n0 1\n2 5\n3 4\n0\n"

func newTestServer(t *testing.T, options ...Option) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	runner := pipeline.NewRunner(c, nil, nil)
	t.Cleanup(func() { runner.Close() })

	options = append([]Option{WithLogger(log.NewWithOptions(io.Discard, log.Options{}))}, options...)
	ts := httptest.NewServer(New(runner, options...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, contentType, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

type solveResponse struct {
	ID     string `json:"id"`
	Count  int    `json:"count"`
	Method string `json:"method"`
	Chords []struct {
		Head int `json:"head"`
		Tail int `json:"tail"`
	} `json:"chords"`
	Trace []struct {
		I int `json:"i"`
		J int `json:"j"`
	} `json:"trace"`
	Visits int `json:"visits"`
}

func TestSolve(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/solve?method=bu", "text/plain", nestedInput)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "miss", resp.Header.Get("X-Cache"))

	body := decode[solveResponse](t, resp)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, resp.Header.Get("X-Run-Id"), body.ID)
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "bu", body.Method)
	require.Len(t, body.Chords, 3)
	assert.Equal(t, 2, body.Chords[1].Head)
	assert.Equal(t, 5, body.Chords[1].Tail)
	require.Len(t, body.Trace, 4)
	assert.Equal(t, 0, body.Trace[3].I)
	assert.Equal(t, 5, body.Trace[3].J)
	assert.Equal(t, 15, body.Visits)

	// Second identical request is served from cache with a fresh id.
	again := post(t, ts.URL+"/v1/solve?method=bu", "text/plain", nestedInput)
	require.Equal(t, http.StatusOK, again.StatusCode)
	assert.Equal(t, "hit", again.Header.Get("X-Cache"))
	assert.NotEqual(t, body.ID, decode[solveResponse](t, again).ID)
}

func TestSolveTextOutput(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/solve?output=text", "text/plain", "4\n0 2\n1 3\n0\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0])
}

func TestSolveErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   errors.Code
	}{
		{"odd count", "", "3\n0 1\n", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"garbage", "", "six\n", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"duplicate position", "", "4\n0 1\n1 2\n", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad method", "?method=dp", nestedInput, http.StatusBadRequest, errors.ErrCodeInvalidMethod},
		{"bad bool", "?refresh=maybe", nestedInput, http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/v1/solve"+tt.query, "text/plain", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode[errorResponse](t, resp)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestSolveErrorNamesLine(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/solve", "text/plain", "4\n0 1\n2 x\n")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errorResponse](t, resp)
	assert.Contains(t, body.Error, "line 3")
}

func TestBodyTooLarge(t *testing.T) {
	ts := newTestServer(t, WithMaxBodyBytes(16))

	resp := post(t, ts.URL+"/v1/solve", "text/plain", "8\n0 1\n2 3\n4 5\n6 7\n0\n")
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestTooManyChords(t *testing.T) {
	ts := newTestServer(t, WithMaxChords(2))

	for _, path := range []string{"/v1/solve", "/v1/render?format=dot"} {
		resp := post(t, ts.URL+path, "text/plain", nestedInput)
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode, path)
		body := decode[errorResponse](t, resp)
		assert.Equal(t, errors.ErrCodeInvalidInput, body.Code)
		assert.Contains(t, body.Error, "limit of 2")
	}

	resp := post(t, ts.URL+"/v1/solve", "text/plain", "4\n0 2\n1 3\n")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRenderDOT(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/render?format=dot&only_plan=true", "text/plain", "4\n0 2\n1 3\n0\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/vnd.graphviz; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "1", resp.Header.Get("X-Chord-Count"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph chords {")
	assert.Equal(t, 1, strings.Count(string(data), " -- "))
}

func TestRenderBadFormat(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/v1/render?format=gif", "text/plain", nestedInput)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, errors.ErrCodeInvalidFormat, decode[errorResponse](t, resp).Code)
}

func TestCompare(t *testing.T) {
	ts := newTestServer(t)

	same := `{"a": {"count": 2, "chords": [{"head": 0, "tail": 3}, {"head": 1, "tail": 2}]},
	          "b": {"count": 2, "chords": [{"head": 0, "tail": 3}, {"head": 1, "tail": 2}]}}`
	resp := post(t, ts.URL+"/v1/compare", "application/json", same)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, true, body["identical"])
	assert.NotEmpty(t, body["id"])

	diff := `{"a": {"count": 2, "chords": [{"head": 0, "tail": 3}, {"head": 1, "tail": 2}]},
	          "b": {"count": 2, "chords": [{"head": 0, "tail": 3}, {"head": 4, "tail": 5}]}}`
	resp = post(t, ts.URL+"/v1/compare", "application/json", diff)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode[map[string]any](t, resp)
	assert.Equal(t, false, body["identical"])
	diffs, ok := body["diffs"].([]any)
	require.True(t, ok)
	assert.Len(t, diffs, 1)

	resp = post(t, ts.URL+"/v1/compare", "application/json", `{"a": {"count": 1}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompareRejectsMismatchedCount(t *testing.T) {
	ts := newTestServer(t)

	short := `{"a": {"count": 2, "chords": [{"head": 0, "tail": 1}, {"head": 2, "tail": 3}]},
	           "b": {"count": 2, "chords": []}}`
	resp := post(t, ts.URL+"/v1/compare", "application/json", short)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errorResponse](t, resp)
	assert.Equal(t, errors.ErrCodeInvalidInput, body.Code)
	assert.Contains(t, body.Error, "b: count is 2 but 0 chords are listed")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{errors.New(errors.ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeUnsupported, "x"), http.StatusNotImplemented},
		{errors.New(errors.ErrCodeFileNotFound, "x"), http.StatusNotFound},
		{context.Canceled, http.StatusServiceUnavailable},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _ := classify(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
