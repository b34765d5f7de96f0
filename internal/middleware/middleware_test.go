package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
})

func TestCORSWildcard(t *testing.T) {
	handler := CORS("*")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin: got %q, want %q", got, "*")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestCORSSingleOrigin(t *testing.T) {
	handler := CORS("http://localhost:4200")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4200" {
		t.Errorf("Allow-Origin: got %q", got)
	}
	if !strings.Contains(rec.Header().Get("Vary"), "Origin") {
		t.Error("Vary header missing Origin")
	}
}

func TestCORSForeignOriginGetsNoHeader(t *testing.T) {
	handler := CORS("http://localhost:4200")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin: got %q, want empty", got)
	}
	// Request itself still goes through — CORS is enforced by the browser.
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS("*")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached the next handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/admin/login", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status: got %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin: got %q, want %q", got, "*")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Errorf("Allow-Methods missing PATCH: %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestCORSPreflightRejectsUnknownMethod(t *testing.T) {
	handler := CORS("*")(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/admin/login", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", "TRACE")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Errorf("Allow-Methods for TRACE: got %q, want empty", got)
	}
}

func TestRecovererTurnsPanicInto500(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Errorf("message: got %q", body.Message)
	}
}

func TestLoggerPassesThrough(t *testing.T) {
	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestResponseWriterDefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.Write([]byte("ok"))
	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode: got %d, want 200", rw.statusCode)
	}
	if rw.bytes != 2 {
		t.Errorf("bytes: got %d, want 2", rw.bytes)
	}

	// A later WriteHeader must not overwrite the recorded status.
	rw.WriteHeader(http.StatusNotFound)
	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode after late WriteHeader: got %d, want 200", rw.statusCode)
	}
}

func TestRateLimiterDisabledWithoutClient(t *testing.T) {
	rl := NewRateLimiter(nil, 1, false)
	handler := rl.Middleware(okHandler)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i, rec.Code)
		}
	}
}

func TestClientIPBehindProxy(t *testing.T) {
	rl := NewRateLimiter(nil, 1, true)

	tests := []struct {
		name   string
		setup  func(*http.Request)
		remote string
		want   string
	}{
		{"forwarded single", func(r *http.Request) {
			r.Header.Set("X-Forwarded-For", "203.0.113.7")
		}, "10.0.0.1:1234", "203.0.113.7"},
		{"forwarded chain", func(r *http.Request) {
			r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
		}, "10.0.0.1:1234", "203.0.113.7"},
		{"real ip", func(r *http.Request) {
			r.Header.Set("X-Real-IP", "203.0.113.9")
		}, "10.0.0.1:1234", "203.0.113.9"},
		{"no headers", func(r *http.Request) {}, "192.0.2.4:5678", "192.0.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
			req.RemoteAddr = tt.remote
			tt.setup(req)
			if got := rl.clientIP(req); got != tt.want {
				t.Errorf("clientIP: got %q, want %q", got, tt.want)
			}
		})
	}
}

// Without a trusted proxy, forwarding headers are client-controlled and
// must not rotate the limiter key.
func TestClientIPIgnoresHeadersWithoutProxy(t *testing.T) {
	rl := NewRateLimiter(nil, 1, false)

	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"ipv4", "192.0.2.4:5678", "192.0.2.4"},
		{"ipv6", "[2001:db8::1]:5678", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
			req.RemoteAddr = tt.remote
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			req.Header.Set("X-Real-IP", "203.0.113.9")
			if got := rl.clientIP(req); got != tt.want {
				t.Errorf("clientIP: got %q, want %q", got, tt.want)
			}
		})
	}
}
