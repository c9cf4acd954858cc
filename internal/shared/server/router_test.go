package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/ats"
	"resume-ats/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:             "8080",
		Env:              "test",
		CORSAllowOrigins: []string{"*"},
		MaxBodyBytes:     1 << 20,
		MaxUploadBytes:   1 << 20,
		RateLimitRPS:     100,
		RateLimitBurst:   100,
		MetricsEnabled:   true,
	}
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHealthReportsModelVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	analyzer := ats.NewAnalyzer(nil)
	r := NewRouter(testConfig(), analyzer)

	for _, path := range []string{"/api/health", "/api/v1/health"} {
		resp := serve(r, http.MethodGet, path, "")
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		var body struct {
			OK           bool   `json:"ok"`
			ModelVersion string `json:"modelVersion"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode health: %v", err)
		}
		if !body.OK || body.ModelVersion != analyzer.Model().Version {
			t.Fatalf("%s: unexpected health body %+v", path, body)
		}
	}
}

func TestAnalyzeRouteOnBothPrefixes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testConfig(), nil)

	for _, path := range []string{"/api/analyze-ats", "/api/v1/analyze-ats"} {
		resp := serve(r, http.MethodPost, path, `{"resumeText":"Jane Smith\njane@example.com\nEXPERIENCE\nLed a team"}`)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestPreflightAndMethodHandling(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testConfig(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze-ats", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected preflight 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}

	resp = serve(r, http.MethodGet, "/api/analyze-ats", "")
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] != "Method not allowed" {
		t.Fatalf("unexpected 405 body %v", body)
	}

	resp = serve(r, http.MethodGet, "/api/nope", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r := NewRouter(cfg, nil)
	if resp := serve(r, http.MethodGet, "/metrics", ""); resp.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", resp.Code)
	}

	cfg.MetricsEnabled = false
	r = NewRouter(cfg, nil)
	if resp := serve(r, http.MethodGet, "/metrics", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected metrics 404 when disabled, got %d", resp.Code)
	}
}

func TestRateLimitExemptsHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	r := NewRouter(cfg, nil)

	body := `{"resumeText":"Jane Smith"}`
	if resp := serve(r, http.MethodPost, "/api/analyze-ats", body); resp.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp.Code)
	}
	resp := serve(r, http.MethodPost, "/api/analyze-ats", body)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
	for i := 0; i < 3; i++ {
		if resp := serve(r, http.MethodGet, "/api/health", ""); resp.Code != http.StatusOK {
			t.Fatalf("health should not be rate limited, got %d", resp.Code)
		}
	}
}

func TestBodyLimitRejectsLargeJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.MaxBodyBytes = 64
	r := NewRouter(cfg, nil)

	resp := serve(r, http.MethodPost, "/api/analyze-ats", `{"resumeText":"`+strings.Repeat("a", 128)+`"}`)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
