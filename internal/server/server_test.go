package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliteskills/ats-engine/internal/server/ratelimit"
)

// newMultipartBody writes the given form fields into buf and returns the
// Content-Type header value.
func newMultipartBody(t *testing.T, buf *bytes.Buffer, fields map[string]string) string {
	t.Helper()
	mw := multipart.NewWriter(buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	require.NoError(t, mw.Close())
	return mw.FormDataContentType()
}

func testHandler(s *Server) http.Handler {
	return s.withRateLimit(s.withLogging(s.withCORS(s.routes())))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	handler := testHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := newTestServer(t)
	handler := testHandler(s)

	req := httptest.NewRequest(http.MethodOptions, "/scan", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitExceeded(t *testing.T) {
	s := &Server{
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{
			Enabled:           true,
			RequestsPerMinute: 10,
			Burst:             1,
		}),
	}
	t.Cleanup(s.rateLimiter.Stop)
	handler := testHandler(s)

	resume := "SKILLS\n- Excel"
	job := "Excel reporting role"

	req := httptest.NewRequest(http.MethodPost, "/scan", scanBody(t, resume, job))
	req.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/scan", scanBody(t, resume, job))
	req.RemoteAddr = "10.0.0.1:5001"
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])
}

func TestRouter_HealthExemptFromRateLimit(t *testing.T) {
	s := &Server{
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{
			Enabled:           true,
			RequestsPerMinute: 10,
			Burst:             1,
		}),
	}
	t.Cleanup(s.rateLimiter.Stop)
	handler := testHandler(s)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.2:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.168.1.10:54321"
	assert.Equal(t, "192.168.1.10", s.extractClientID(req))

	req.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", s.extractClientID(req))
}
