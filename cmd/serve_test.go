package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordnova/config"
	"github.com/jsphweid/chordnova/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return NewRouter(cfg, zap.NewNop())
}

func post(t *testing.T, h http.Handler, path string, body model.PairRequestBody) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	t.Helper()
	var res A
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &res), string(data))
	return res
}

func TestHandleDiff(t *testing.T) {
	resp := post(t, newTestRouter(t), "/diff", model.PairRequestBody{From: "C4 E4 G4", To: "C4 E4 G4 B-4"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	d := decode[model.DiffResponse](t, resp)
	assert.Equal(t, []int{0, 0, 0, -3}, d.Vec)
	assert.Equal(t, 3, d.SV)
	assert.InDelta(t, 3.0, d.Norm, 1e-9)
	assert.Equal(t, "<ChordDiff: [0, 0, 0, -3], sv: 3, norm: 3.00>", d.Text)
}

func TestHandlePair(t *testing.T) {
	resp := post(t, newTestRouter(t), "/pair", model.PairRequestBody{From: "C4 E4 G4", To: "C4 E4 G4 B-4"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	p := decode[model.PairResponse](t, resp)
	assert.Equal(t, "pairs", p.Strategy)
	assert.Equal(t, []int{60, 64, 67, 67}, p.From.Notes)
	assert.Equal(t, []string{"C4", "E4", "G4", "B-4"}, p.To.Names)
	assert.Equal(t, 3, p.Diff.SV)
	assert.Equal(t, []int{0, 0, 0, -3}, p.Diff.Vec)
}

func TestHandleVec(t *testing.T) {
	h := newTestRouter(t)

	resp := post(t, h, "/vec", model.PairRequestBody{From: "C4 E4 G4", To: "F3 A3 C4"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	p := decode[model.PairResponse](t, resp)
	assert.Equal(t, "inversion", p.Strategy)
	assert.Equal(t, []int{60, 65, 69}, p.To.Notes)

	resp = post(t, h, "/vec", model.PairRequestBody{From: "C3 G3 E4 C5", To: "C3 E3 G3 B3", Strategy: "pitch-class"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	p = decode[model.PairResponse](t, resp)
	assert.Equal(t, []string{"C3", "G3", "E4", "B4"}, p.To.Names)
}

func TestHandleBadRequests(t *testing.T) {
	h := newTestRouter(t)
	cases := map[string]model.PairRequestBody{
		"syntax":   {From: "C4 X4", To: "C4"},
		"range":    {From: "G#9", To: "C4"},
		"empty":    {From: "", To: "C4"},
		"strategy": {From: "C4", To: "D4", Strategy: "nearest"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := post(t, h, "/vec", body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			e := decode[model.ErrorResponse](t, resp)
			assert.NotEmpty(t, e.Error)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/diff", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	post(t, h, "/diff", model.PairRequestBody{From: "C4", To: "D4"})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "chordnova_http_requests_total")
	assert.Contains(t, w.Body.String(), "chordnova_search_duration_seconds")
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/diff", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
