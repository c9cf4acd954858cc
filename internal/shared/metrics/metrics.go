package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector this service exports.
var Registry = prometheus.NewRegistry()

var (
	analysisStartedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ats_analysis_started_total",
		Help: "Total analyses started",
	})
	analysisCompletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ats_analysis_completed_total",
		Help: "Total analyses completed",
	})
	analysisFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ats_analysis_failed_total",
		Help: "Total analyses failed",
	})
	analysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ats_analysis_duration_ms",
		Help:    "Analysis duration in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
	analysisScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ats_analysis_score",
		Help:    "Distribution of final ATS scores",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	})
	extractionTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ats_extraction_total",
		Help: "Document text extractions by MIME type and outcome",
	}, []string{"mime_type", "outcome"})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ats_http_requests_total",
		Help: "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		analysisStartedTotal,
		analysisCompletedTotal,
		analysisFailedTotal,
		analysisDuration,
		analysisScore,
		extractionTotal,
		httpRequestsTotal,
	)
}

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStartedTotal.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Inc()
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Inc()
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// ObserveScore records a final ATS score.
func ObserveScore(score int) {
	analysisScore.Observe(float64(score))
}

// IncExtraction counts one extraction attempt.
func IncExtraction(mimeType, outcome string) {
	if mimeType == "" {
		mimeType = "unknown"
	}
	extractionTotal.WithLabelValues(mimeType, outcome).Inc()
}

// ObserveRequest counts one completed HTTP request.
func ObserveRequest(route, method string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Middleware counts requests by matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
