package server

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resistor-api/internal/colors"
	"resistor-api/internal/observability"
	"resistor-api/internal/resistors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, limiter *RateLimiter) http.Handler {
	t.Helper()
	observability.Logger = zap.NewNop()
	if err := colors.InitMetrics(); err != nil {
		t.Fatalf("initializing colors metrics: %v", err)
	}
	if err := resistors.InitMetrics(); err != nil {
		t.Fatalf("initializing resistors metrics: %v", err)
	}
	return NewRouter(colors.NewRegistry(), limiter)
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterValueFromBandsSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	router := newTestRouter(t, nil)

	body := []byte(`{"firstBand":"brown","secondBand":"black","multiplier":"red","tolerance":"gold"}`)
	req := httptest.NewRequest(http.MethodPost, "/resistors/value-from-bands", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	if got, ok := payload["resistorValue"].(float64); !ok || got != 1000 {
		t.Fatalf("expected resistorValue 1000, got %#v", payload["resistorValue"])
	}
}

func TestNewRouterRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/colors", http.StatusOK},
		{http.MethodGet, "/colors/violet", http.StatusOK},
		{http.MethodGet, "/colors/ultraviolet", http.StatusNotFound},
		{http.MethodGet, "/resistors/value-from-bands?firstBand=red&secondBand=red&thirdBand=red&multiplier=orange&tolerance=brown", http.StatusOK},
		{http.MethodGet, "/resistors/value-from-bands?firstBand=red&secondBand=red&multiplier=orange&tolerance=tan", http.StatusNotFound},
		{http.MethodGet, "/openapi.json", http.StatusOK},
		{http.MethodGet, "/openapi.yaml", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/nowhere", http.StatusNotFound},
		{http.MethodDelete, "/colors", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestNewRouterReusesValidIncomingRequestID(t *testing.T) {
	router := newTestRouter(t, nil)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/colors", nil)
	req.Header.Set("X-Request-ID", id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != id {
		t.Fatalf("expected request id %q to be echoed, got %q", id, got)
	}
}

func TestNewRouterSetsSecurityHeaders(t *testing.T) {
	router := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/colors", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("did not expect CORS header without Origin, got %q", got)
	}
}

func TestNewRouterAnswersPreflight(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/resistors/value-from-bands", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Fatalf("unexpected allow methods %q", got)
	}
}

func TestNewRouterCompressesOpenAPIDocument(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}

	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("opening gzip body: %v", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("reading gzip body: %v", err)
	}
	if !strings.Contains(string(raw), `"openapi":"3.0.3"`) {
		t.Fatalf("unexpected document %s", raw)
	}
}

func TestNewRouterRateLimitsDomainRoutesOnly(t *testing.T) {
	router := newTestRouter(t, NewRateLimiter(0.001, 1))

	do := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if got := do("/colors"); got != http.StatusOK {
		t.Fatalf("first request: expected %d, got %d", http.StatusOK, got)
	}
	if got := do("/colors"); got != http.StatusTooManyRequests {
		t.Fatalf("second request: expected %d, got %d", http.StatusTooManyRequests, got)
	}
	if got := do("/health"); got != http.StatusOK {
		t.Fatalf("health: expected %d, got %d", http.StatusOK, got)
	}
}
