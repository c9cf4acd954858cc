package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/x", nil))
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected uuid request id, got %q", seen)
	}
	if resp.Header().Get("X-Request-Id") != seen {
		t.Fatalf("expected header to echo request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "client-abc")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if seen != "client-abc" {
		t.Fatalf("expected caller request id, got %q", seen)
	}
}

func TestRecoveryReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestBodyLimitRejectsLargeBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodyLimit(16, func(c *gin.Context) int64 {
		if c.Request.URL.Path == "/upload" {
			return 64
		}
		return 0
	}))
	handler := func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, "%d", len(data))
	}
	r.POST("/small", handler)
	r.POST("/upload", handler)

	cases := []struct {
		path string
		body string
		want int
	}{
		{"/small", strings.Repeat("a", 10), http.StatusOK},
		{"/small", strings.Repeat("a", 32), http.StatusRequestEntityTooLarge},
		{"/upload", strings.Repeat("a", 32), http.StatusOK},
		{"/upload", strings.Repeat("a", 100), http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body)))
		if resp.Code != tc.want {
			t.Fatalf("%s with %d bytes: expected %d, got %d", tc.path, len(tc.body), tc.want, resp.Code)
		}
	}
}
