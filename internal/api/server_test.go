package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drankou/go-sentiment/internal/hermes"
	"github.com/drankou/go-sentiment/vader"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	sia, err := vader.NewSentimentIntensityAnalyzer()
	require.NoError(t, err)
	return NewServer(8760, sia)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestLanguagesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/languages", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body["languages"], "en")
}

func TestSentimentEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/sentiment", strings.NewReader(`{"text":"The food here is not good"}`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp hermes.ScoreResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "The food here is not good", resp.Text)
	assert.Equal(t, -0.3412, resp.Polarity.Compound)
	assert.Equal(t, 0.325, resp.Polarity.Negative)
}

func TestSentimentEndpoint_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/v1/sentiment", strings.NewReader(`{"text":`))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSentimentEndpoint_BodyTooLarge(t *testing.T) {
	srv := newTestServer(t)

	body := `{"text":"` + strings.Repeat("good ", maxBodyBytes/5+1) + `"}`
	req := httptest.NewRequest("POST", "/api/v1/sentiment", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSentimentEndpoint_WrongMethod(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/sentiment", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
