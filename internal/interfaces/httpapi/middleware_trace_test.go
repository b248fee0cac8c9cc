package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_NonHealthPaths(t *testing.T) {
	paths := []string{"/v1/players", "/v1/players/1", "/", "/docs"}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRequestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Output: &buf})
	handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	if !strings.Contains(line, `"status":418`) {
		t.Fatalf("expected status in log line, got %s", line)
	}
	if !strings.Contains(line, `"client_ip":"203.0.113.7"`) {
		t.Fatalf("expected client ip in log line, got %s", line)
	}
}

func TestRequestID_EchoesOrGenerates(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = requestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected propagated request id, got ctx=%q header=%q", seen, rec.Header().Get("X-Request-ID"))
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))
	if len(seen) != 36 || rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected generated uuid, got ctx=%q header=%q", seen, rec.Header().Get("X-Request-ID"))
	}
}
