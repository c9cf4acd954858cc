package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/analyses"
	"resume-ats/internal/ats"
	"resume-ats/internal/extract"
	"resume-ats/internal/services/health"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
)

const (
	rateGroupDefault = "DEFAULT"
	rateGroupUpload  = "UPLOAD"
	rateGroupExempt  = "EXEMPT"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, analyzer *ats.Analyzer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if analyzer == nil {
		analyzer = ats.NewAnalyzer(nil)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)
	if cfg.MetricsEnabled {
		r.Use(metrics.Middleware())
	}
	r.Use(
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        rateLimitRules(cfg),
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
		}),
		middleware.BodyLimit(cfg.MaxBodyBytes, func(c *gin.Context) int64 {
			if isUploadPath(c.Request.URL.Path) {
				return cfg.MaxUploadBytes
			}
			return 0
		}),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "Not found", "")
	})
	r.NoMethod(func(c *gin.Context) {
		respond.Error(c, http.StatusMethodNotAllowed, "Method not allowed", "")
	})

	// Dependencies
	healthSvc := health.NewService(analyzer.Model().Version)
	extractHandler := extract.NewHandler(cfg.MaxUploadBytes)
	analysisHandler := analyses.NewHandler(analyses.NewService(analyzer), extractHandler)

	for _, prefix := range []string{"/api", "/api/v1"} {
		api := r.Group(prefix)
		api.GET("/health", func(c *gin.Context) {
			respond.OK(c, healthSvc.Status())
		})
		analysisHandler.RegisterRoutes(api)
		extractHandler.RegisterRoutes(api)
	}
	if cfg.MetricsEnabled {
		r.GET("/metrics", metrics.Handler())
	}

	return r
}

func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	uploadBurst := cfg.RateLimitBurst / 2
	if uploadBurst < 1 {
		uploadBurst = 1
	}
	return map[string]middleware.RateLimitRule{
		rateGroupDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		rateGroupUpload:  {Rate: cfg.RateLimitRPS / 2, Burst: uploadBurst},
	}
}

func rateGroupFor(c *gin.Context) string {
	path := c.Request.URL.Path
	switch {
	case path == "/metrics", strings.HasSuffix(path, "/health"):
		return rateGroupExempt
	case isUploadPath(path):
		return rateGroupUpload
	default:
		return rateGroupDefault
	}
}

func isUploadPath(path string) bool {
	return strings.HasSuffix(path, "/extract-text") || strings.HasSuffix(path, "/analyze-file")
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
