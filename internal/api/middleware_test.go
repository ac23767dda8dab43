package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// captureLogs routes the default slog logger into a JSON buffer for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var logBuf bytes.Buffer
	oldLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logBuf, nil)))
	t.Cleanup(func() { slog.SetDefault(oldLogger) })
	return &logBuf
}

func statusHandler(status int) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func TestRecoveryMiddleware_NoPanic(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	middleware := RecoveryMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/", nil)
	w := httptest.NewRecorder()

	middleware.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", w.Body.String(), "OK")
	}
}

func TestRecoveryMiddleware_Panic(t *testing.T) {
	logBuf := captureLogs(t)

	secretMessage := "super-secret-database-password-12345"
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(secretMessage)
	})

	middleware := RecoveryMiddleware(panicHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/goals/", nil)
	w := httptest.NewRecorder()

	middleware.ServeHTTP(w, req)

	// Should return a 500 RFC 7807 problem
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %v, want application/problem+json", ct)
	}

	var p Problem
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("failed to unmarshal response as RFC 7807: %v", err)
	}
	if p.Detail != "Internal Server Error" {
		t.Errorf("detail = %q, want generic 'Internal Server Error'", p.Detail)
	}
	if strings.Contains(w.Body.String(), secretMessage) {
		t.Error("response body contains panic message")
	}

	// But logs SHOULD contain the panic for debugging
	logOutput := logBuf.String()
	if !strings.Contains(logOutput, "panic recovered") {
		t.Error("expected 'panic recovered' in log output")
	}
	if !strings.Contains(logOutput, secretMessage) {
		t.Error("expected panic message in log output")
	}
}

func TestGetRequestID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetRequestID(r.Context())))
	})

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Get("/test", handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Body.String() == "" {
		t.Error("expected non-empty request ID in response body")
	}
}

func TestGetRequestID_NoContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if reqID := GetRequestID(req.Context()); reqID != "" {
		t.Errorf("GetRequestID without context = %q, want empty string", reqID)
	}
}

func TestLogLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   slog.Level
	}{
		{200, slog.LevelInfo},
		{201, slog.LevelInfo},
		{304, slog.LevelInfo},
		{400, slog.LevelWarn},
		{404, slog.LevelWarn},
		{409, slog.LevelWarn},
		{422, slog.LevelWarn},
		{500, slog.LevelError},
		{503, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			if got := logLevelForStatus(tt.status); got != tt.want {
				t.Errorf("logLevelForStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, `"level":"INFO"`},
		{http.StatusUnprocessableEntity, `"level":"WARN"`},
		{http.StatusInternalServerError, `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			logBuf := captureLogs(t)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			LoggingMiddleware(statusHandler(tt.status)).ServeHTTP(httptest.NewRecorder(), req)

			if !strings.Contains(logBuf.String(), tt.wantLevel) {
				t.Errorf("expected %s, got: %s", tt.wantLevel, logBuf.String())
			}
		})
	}
}

func TestLoggingMiddleware_Fields(t *testing.T) {
	logBuf := captureLogs(t)

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(LoggingMiddleware)
	router.Get("/test", statusHandler(http.StatusCreated))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(logBuf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log as JSON: %v", err)
	}

	if logEntry["msg"] != "request completed" {
		t.Errorf("msg = %v, want 'request completed'", logEntry["msg"])
	}
	for _, field := range []string{"request_id", "method", "path", "status", "duration_ms", "remote_addr"} {
		if _, ok := logEntry[field]; !ok {
			t.Errorf("missing expected field: %s", field)
		}
	}
	if logEntry["request_id"] == "" {
		t.Error("request_id is empty")
	}
	if logEntry["status"] != float64(http.StatusCreated) {
		t.Errorf("status = %v, want 201", logEntry["status"])
	}
}
