// internal/handlers/middleware/middleware_test.go
package middleware_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/cdi-tracker/internal/handlers/middleware"
	"github.com/ammerola/cdi-tracker/internal/pkg/logger"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
	"github.com/ammerola/cdi-tracker/test/helpers"
)

func TestRequestID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	wrapped := middleware.RequestID("X-Request-ID")(handler)

	tests := []struct {
		name     string
		incoming string
		check    func(t *testing.T, header string)
	}{
		{
			name: "generates_new_request_id",
			check: func(t *testing.T, header string) {
				assert.Len(t, header, 36)
			},
		},
		{
			name:     "uses_existing_request_id",
			incoming: "existing-id-123",
			check: func(t *testing.T, header string) {
				assert.Equal(t, "existing-id-123", header)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			header := w.Header().Get("X-Request-ID")
			tt.check(t, header)
			assert.Equal(t, header, seen)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.LogConfig{Level: "info", Format: "json"}, &buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Insufficient stock"}`))
	})
	wrapped := middleware.Chain(handler, middleware.RequestID(""), middleware.Logger(l))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", nil)
	req.Header.Set("X-Request-ID", "req-7")
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	out := buf.String()
	assert.Contains(t, out, `"severity":"WARN"`)
	assert.Contains(t, out, `"request_id":"req-7"`)
	assert.Contains(t, out, `"path":"/api/v1/sales"`)
	assert.Contains(t, out, `"status":409`)
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "recovers_from_panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("test panic")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name: "passes_through_normal_response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("normal response"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "normal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := middleware.Recovery(helpers.TestLogger())(tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// two per second, burst two
	wrapped := middleware.RateLimit(middleware.NewRateLimiter(2, time.Second))(handler)

	serve := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("127.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, serve("127.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, serve("127.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, serve("192.168.1.1:5678"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := middleware.NewRateLimiter(1, time.Hour)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	rl.Sweep(0)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestCORS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		allowedOrigins []string
		requestOrigin  string
		requestMethod  string
		expectedStatus int
		checkHeaders   func(*testing.T, http.Header)
	}{
		{
			name:           "allows_wildcard_origin",
			allowedOrigins: []string{"*"},
			requestOrigin:  "https://example.com",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.Equal(t, "https://example.com", headers.Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "allows_specific_origin",
			allowedOrigins: []string{"https://app.example.com", "https://admin.example.com"},
			requestOrigin:  "https://app.example.com",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.Equal(t, "https://app.example.com", headers.Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "handles_preflight_request",
			allowedOrigins: []string{"*"},
			requestOrigin:  "https://example.com",
			requestMethod:  http.MethodOptions,
			expectedStatus: http.StatusNoContent,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.NotEmpty(t, headers.Get("Access-Control-Allow-Methods"))
				assert.NotEmpty(t, headers.Get("Access-Control-Allow-Headers"))
			},
		},
		{
			name:           "blocks_unallowed_origin",
			allowedOrigins: []string{"https://allowed.com"},
			requestOrigin:  "https://notallowed.com",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
			checkHeaders: func(t *testing.T, headers http.Header) {
				assert.Empty(t, headers.Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := middleware.CORS(tt.allowedOrigins)(handler)

			req := httptest.NewRequest(tt.requestMethod, "/test", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkHeaders(t, w.Header())
		})
	}
}

func TestTimeout(t *testing.T) {
	var deadline time.Time
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, _ = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	middleware.Timeout(time.Second)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.False(t, deadline.IsZero())
	assert.WithinDuration(t, start.Add(time.Second), deadline, 100*time.Millisecond)
}

func TestCompression(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sale_event_id":1}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	middleware.Compression(handler).ServeHTTP(w, req)

	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sale_event_id":1}`, string(body))
}

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wrapped := middleware.Metrics(m)(handler)
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/sales/9", nil))
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/sales/9", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "404")))
}
