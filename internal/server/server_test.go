package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/information-sharing-networks/cicd-demo/internal/config"
	"github.com/information-sharing-networks/cicd-demo/internal/logger"
	"github.com/information-sharing-networks/cicd-demo/internal/server/handlers"
)

// testConfig returns a valid config serving static files from publicDir
func testConfig(publicDir string) *config.ServerEnvironment {
	return &config.ServerEnvironment{
		Environment:           "test",
		Host:                  "localhost",
		Port:                  3000,
		LogLevel:              "none",
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          5 * time.Second,
		IdleTimeout:           5 * time.Second,
		RequestTimeout:        5 * time.Second,
		ServerShutdownTimeout: 5 * time.Second,
		PublicDir:             publicDir,
		AllowedOrigins:        []string{"*"},
		MaxRequestBodySize:    1024,
		RateLimitBurst:        200,
	}
}

func newTestServer(t *testing.T, cfg *config.ServerEnvironment) *Server {
	t.Helper()

	appLogger := logger.NewLogger(io.Discard, logger.LevelNone, cfg.Environment)
	s, err := NewServer(cfg, appLogger)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

func doRequest(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v (%q)", err, rr.Body.String())
	}
	return body
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	if _, err := NewServer(nil, logger.NewLogger(io.Discard, logger.LevelNone, "test")); err == nil {
		t.Error("expected error for nil config")
	}

	cfg := testConfig(t.TempDir())
	cfg.Port = 0
	if _, err := NewServer(cfg, logger.NewLogger(io.Discard, logger.LevelNone, "test")); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestRootInfo(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Environment = "qa"
	s := newTestServer(t, cfg)

	before := time.Now().Add(-time.Millisecond)
	rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, "/", nil))
	after := time.Now().Add(time.Millisecond)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type: got %q", ct)
	}

	body := decodeJSON(t, rr)
	if body["message"] != "🚀 CI/CD Demo Application" {
		t.Errorf("message: got %v", body["message"])
	}
	if v, _ := body["version"].(string); v == "" {
		t.Error("version should not be empty")
	}
	if body["environment"] != "qa" {
		t.Errorf("environment: got %v, want qa", body["environment"])
	}

	endpoints, ok := body["endpoints"].(map[string]any)
	if !ok {
		t.Fatalf("endpoints: got %T", body["endpoints"])
	}
	if endpoints["health"] != "/health" || endpoints["docs"] != "/api-docs" {
		t.Errorf("endpoints: got %v", endpoints)
	}

	ts, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string))
	if err != nil {
		t.Fatalf("timestamp is not ISO-8601: %v", err)
	}
	if ts.Before(before) || ts.After(after) {
		t.Errorf("timestamp %v not within request window [%v, %v]", ts, before, after)
	}
}

func TestHeadRequests(t *testing.T) {
	s := newTestServer(t, testConfig(t.TempDir()))

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/", http.StatusOK},
		{"/version", http.StatusOK},
		{"/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodHead, tt.path, nil))
			if rr.Code != tt.wantCode {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

func TestRequestTimeout(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.RequestTimeout = 20 * time.Millisecond
	s := newTestServer(t, cfg)

	s.router.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, "/slow", nil))

	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("got status %d, want %d", rr.Code, http.StatusGatewayTimeout)
	}
	body := decodeJSON(t, rr)
	if body["error"] != "Request timed out" {
		t.Errorf("error: got %v", body["error"])
	}
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, testConfig(t.TempDir()))

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/nonexistent"},
		{"unknown nested path", http.MethodGet, "/a/b/c"},
		{"unsupported method on known path", http.MethodDelete, "/"},
		{"post to root", http.MethodPost, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, s.Handler(), httptest.NewRequest(tt.method, tt.path, nil))

			if rr.Code != http.StatusNotFound {
				t.Fatalf("got status %d, want %d", rr.Code, http.StatusNotFound)
			}
			if got := strings.TrimSpace(rr.Body.String()); got != `{"error":"Route not found"}` {
				t.Errorf("got body %s", got)
			}
		})
	}
}

func TestErrorBoundary(t *testing.T) {
	secret := "runtime error: index out of range [3] with length 2"
	s := newTestServer(t, testConfig(t.TempDir()))

	s.router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New(secret))
	})
	s.router.Get("/error", handlers.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New(secret)
	}))

	for _, path := range []string{"/panic", "/error"} {
		t.Run(path, func(t *testing.T) {
			rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, path, nil))

			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("got status %d, want %d", rr.Code, http.StatusInternalServerError)
			}
			if strings.Contains(rr.Body.String(), secret) {
				t.Errorf("response leaked error details: %s", rr.Body.String())
			}
			body := decodeJSON(t, rr)
			if body["error"] != "Something went wrong!" {
				t.Errorf("error: got %v", body["error"])
			}
			if body["error"] == secret {
				t.Error("response body must not equal the error message")
			}
			// security headers are set before the handler runs
			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("security headers missing on error response")
			}
		})
	}
}

func TestHealthIsMounted(t *testing.T) {
	s := newTestServer(t, testConfig(t.TempDir()))

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/health", http.StatusOK},
		{"/health/live", http.StatusOK},
		{"/health/ready", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rr.Code != tt.wantCode {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

func TestReadinessFailsWhenPublicDirIsRemoved(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t, testConfig(dir))

	if err := os.Remove(dir); err != nil {
		t.Fatal(err)
	}

	rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestVersionAndDocs(t *testing.T) {
	s := newTestServer(t, testConfig(t.TempDir()))

	for _, path := range []string{"/version", "/api-docs"} {
		t.Run(path, func(t *testing.T) {
			rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, path, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("got status %d, want %d", rr.Code, http.StatusOK)
			}
			decodeJSON(t, rr)
		})
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	content := []byte("<!doctype html><p>static\x00bytes</p>\n")
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "page.html"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t, testConfig(dir))

	rr := doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, "/assets/page.html", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rr.Code, http.StatusOK)
	}
	if !bytes.Equal(rr.Body.Bytes(), content) {
		t.Errorf("static file not served byte-identical: got %q", rr.Body.Bytes())
	}

	// the root route is unaffected when there is no index.html
	rr = doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, "/", nil))
	if body := decodeJSON(t, rr); body["message"] == nil {
		t.Error("expected root info response")
	}

	rr = doRequest(t, s.Handler(), httptest.NewRequest(http.MethodGet, "/assets/missing.html", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing file: got status %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMalformedJSONBody(t *testing.T) {
	s := newTestServer(t, testConfig(t.TempDir()))

	reached := false
	s.router.Post("/echo", func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"broken":`))
	req.Header.Set("Content-Type", "application/json")
	rr := doRequest(t, s.Handler(), req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if reached {
		t.Error("route handler should not run for a malformed body")
	}

	big := `{"k":"` + strings.Repeat("x", 2048) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	rr = doRequest(t, s.Handler(), req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestMiddlewareHeaders(t *testing.T) {
	s := newTestServer(t, testConfig(t.TempDir()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := doRequest(t, s.Handler(), req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want *", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options: got %q", got)
	}
	if got := rr.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS should not be sent outside production, got %q", got)
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set("Origin", "https://example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr = doRequest(t, s.Handler(), preflight)
	if rr.Code != http.StatusOK {
		t.Errorf("preflight: got status %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("preflight Access-Control-Allow-Origin: got %q, want *", got)
	}
}

// findFreePort asks the kernel for a free port
func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func TestStartBindsConfiguredPort(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Port = findFreePort(t)
	s := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- s.Start(ctx)
	}()

	baseURL := fmt.Sprintf("http://localhost:%d", cfg.Port)
	client := &http.Client{Timeout: time.Second}

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = client.Get(baseURL + "/")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server did not accept connections on port %d: %v", cfg.Port, err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}

	cancel()
	select {
	case err := <-serverDone:
		if err != nil {
			t.Errorf("server shutdown with error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestStartFailsWhenPortInUse(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	cfg := testConfig(t.TempDir())
	cfg.Port = listener.Addr().(*net.TCPAddr).Port
	s := newTestServer(t, cfg)

	if err := s.Start(context.Background()); err == nil {
		t.Error("expected error when the port is already bound")
	}
}
