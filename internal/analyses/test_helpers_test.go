package analyses

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/ats"
	"resume-ats/internal/extract"
	"resume-ats/internal/shared/server/middleware"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	payload, err := os.ReadFile(filepath.Join("..", "ats", "testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(payload)
}

type panicEngine struct{}

func (panicEngine) Analyze(string, string) ats.AnalysisReport {
	panic("boom")
}

func setupAnalysisRouter(t *testing.T, engine Engine) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	h := NewHandler(NewService(engine), extract.NewHandler(1<<20))
	h.RegisterRoutes(r.Group("/api"))
	return r
}
