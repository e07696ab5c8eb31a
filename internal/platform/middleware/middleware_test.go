// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsboard/internal/platform/constants"
	"github.com/taibuivan/newsboard/internal/platform/ctxutil"
	"github.com/taibuivan/newsboard/internal/platform/middleware"
)

type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

/*
TestRequestID generates a v7 identifier or keeps the caller's.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	parsed, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "abc-123", seen)
}

/*
TestStructuredLogger emits one finished entry with the final status.
*/
func TestStructuredLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))

	var downstream *slog.Logger
	handler := middleware.RequestID()(middleware.StructuredLogger(logger)(
		http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			downstream = ctxutil.GetLogger(request.Context())
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"msg":"Route Not Found"}`))
		}),
	))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.NotNil(t, downstream)
	assert.NotSame(t, slog.Default(), downstream)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "http_request_finished", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, float64(len(`{"msg":"Route Not Found"}`)), entry["bytes"])
	assert.Equal(t, "/api/nope", entry["path"])
	assert.NotEmpty(t, entry["request_id"])
}

/*
TestPanicRecovery answers with the internal error body.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"msg":"Internal Server Error"}`, recorder.Body.String())
}

/*
TestCORS covers development, allow-listed and foreign origins.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name      string
		cfg       corsConfig
		origin    string
		wantAllow string
	}{
		{"development_any_origin", corsConfig{development: true}, "http://localhost:3000", "http://localhost:3000"},
		{"production_listed", corsConfig{origins: []string{"https://news.example.com"}}, "https://news.example.com", "https://news.example.com"},
		{"production_foreign", corsConfig{origins: []string{"https://news.example.com"}}, "https://evil.example.org", ""},
		{"no_origin", corsConfig{development: true}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
			if tt.origin != "" {
				request.Header.Set(constants.HeaderOrigin, tt.origin)
			}

			recorder := httptest.NewRecorder()
			middleware.CORS(tt.cfg)(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.wantAllow, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

/*
TestCORS_Preflight short-circuits with 204.
*/
func TestCORS_Preflight(t *testing.T) {
	request := httptest.NewRequest(http.MethodOptions, "/api/articles/1", nil)
	request.Header.Set(constants.HeaderOrigin, "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	recorder := httptest.NewRecorder()
	middleware.CORS(corsConfig{development: true})(okHandler).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

/*
TestRateLimiter_Middleware throttles per IP once the burst is spent.
*/
func TestRateLimiter_Middleware(t *testing.T) {
	handler := middleware.NewRateLimiter(0.001, 2).Middleware(okHandler)

	call := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/api", nil)
		request.Header.Set(constants.HeaderXRealIP, ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

/*
TestRealIP prefers proxy headers over the socket address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set(constants.HeaderXForwardedFor, " 203.0.113.7 , 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set(constants.HeaderXRealIP, "198.51.100.2")
	assert.Equal(t, "198.51.100.2", middleware.RealIP(request))
}

/*
TestMetrics labels by route pattern and folds unmatched paths together.
*/
func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	router := chi.NewRouter()
	router.Use(metrics.Middleware)
	router.Get("/api/articles/{article_id}", func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{}`))
	})

	for _, target := range []string{"/api/articles/1", "/api/articles/2", "/random/a", "/random/b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Requests.WithLabelValues("GET", "/api/articles/{article_id}", "200")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Inflight))

	expected := `
# HELP http_requests_inflight Current number of in-flight HTTP requests.
# TYPE http_requests_inflight gauge
http_requests_inflight 0
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "http_requests_inflight"))
}
