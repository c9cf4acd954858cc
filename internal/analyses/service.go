package analyses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"resume-ats/internal/ats"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/telemetry"
)

// Engine scores resume text.
type Engine interface {
	Analyze(resumeText, jobDescriptionText string) ats.AnalysisReport
}

// Service validates requests and runs the scoring engine.
type Service struct {
	Engine   Engine
	validate *validator.Validate
}

// NewService constructs a Service around engine.
func NewService(engine Engine) *Service {
	return &Service{Engine: engine, validate: validator.New()}
}

// Analyze scores one resume. Engine panics surface as ErrAnalysisFailed.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (report ats.AnalysisReport, err error) {
	if err := ctx.Err(); err != nil {
		return ats.AnalysisReport{}, err
	}
	req = req.normalized()
	if err := s.validateRequest(req); err != nil {
		return ats.AnalysisReport{}, err
	}

	requestID := requestIDFromContext(ctx)
	mode := modeFor(req)
	start := time.Now()
	metrics.IncAnalysisStarted()

	defer func() {
		if rec := recover(); rec != nil {
			metrics.IncAnalysisFailed()
			telemetry.Error("analysis.failed", map[string]any{
				"request_id": requestID,
				"mode":       string(mode),
				"error":      fmt.Sprint(rec),
			})
			report = ats.AnalysisReport{}
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, rec)
		}
	}()

	report = s.Engine.Analyze(req.ResumeText, req.JobDescriptionText)

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs)
	metrics.ObserveScore(report.Score)
	fields := map[string]any{
		"request_id":    requestID,
		"mode":          string(mode),
		"score":         report.Score,
		"duration_ms":   durationMs,
		"model_version": report.ModelVersion,
		"improvements":  len(report.Improvements),
	}
	if report.JobMatch != nil {
		fields["job_match_pct"] = report.JobMatch.MatchPercentage
	}
	telemetry.Info("analysis.complete", fields)
	return report, nil
}

func (s *Service) validateRequest(req AnalyzeRequest) error {
	v := s.validate
	if v == nil {
		v = validator.New()
	}
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Field() == "ResumeText" && fe.Tag() == "required" {
			return ErrResumeRequired
		}
	}
	fe := verrs[0]
	return fmt.Errorf("%w: %s exceeds %s characters", ErrInputTooLarge, fe.Field(), fe.Param())
}
