package analyses

import (
	"context"
	"errors"
	"testing"

	"resume-ats/internal/ats"
	"resume-ats/internal/shared/metrics"
)

func counterValue(t *testing.T, name string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

type recordingEngine struct {
	resume, jd string
}

func (e *recordingEngine) Analyze(resume, jd string) ats.AnalysisReport {
	e.resume, e.jd = resume, jd
	return ats.AnalysisReport{Score: 42, ModelVersion: "test"}
}

func TestServiceAnalyzeNormalizesBlankJobDescription(t *testing.T) {
	engine := &recordingEngine{}
	svc := NewService(engine)

	report, err := svc.Analyze(context.Background(), AnalyzeRequest{ResumeText: "Jane Smith", JobDescriptionText: "  \n "})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Score != 42 {
		t.Fatalf("expected engine report, got score %d", report.Score)
	}
	if engine.jd != "" {
		t.Fatalf("expected blank job description to be dropped, got %q", engine.jd)
	}
	if engine.resume != "Jane Smith" {
		t.Fatalf("expected resume text to pass through, got %q", engine.resume)
	}
}

func TestServiceAnalyzeValidation(t *testing.T) {
	svc := NewService(&recordingEngine{})

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{})
	if !errors.Is(err, ErrResumeRequired) {
		t.Fatalf("expected ErrResumeRequired, got %v", err)
	}

	long := make([]byte, 50001)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.Analyze(context.Background(), AnalyzeRequest{ResumeText: "Jane", JobDescriptionText: string(long)})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

func TestServiceAnalyzeCancelledContext(t *testing.T) {
	engine := &recordingEngine{}
	svc := NewService(engine)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Analyze(ctx, AnalyzeRequest{ResumeText: "Jane"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if engine.resume != "" {
		t.Fatalf("engine should not run on a cancelled context")
	}
}

func TestServiceAnalyzeRecordsMetrics(t *testing.T) {
	started := counterValue(t, "ats_analysis_started_total")
	completed := counterValue(t, "ats_analysis_completed_total")
	failed := counterValue(t, "ats_analysis_failed_total")

	if _, err := NewService(&recordingEngine{}).Analyze(context.Background(), AnalyzeRequest{ResumeText: "Jane"}); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, err := NewService(panicEngine{}).Analyze(context.Background(), AnalyzeRequest{ResumeText: "Jane"}); !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}

	if got := counterValue(t, "ats_analysis_started_total") - started; got != 2 {
		t.Fatalf("expected 2 started, got %v", got)
	}
	if got := counterValue(t, "ats_analysis_completed_total") - completed; got != 1 {
		t.Fatalf("expected 1 completed, got %v", got)
	}
	if got := counterValue(t, "ats_analysis_failed_total") - failed; got != 1 {
		t.Fatalf("expected 1 failed, got %v", got)
	}
}

func TestModeFor(t *testing.T) {
	if got := modeFor(AnalyzeRequest{ResumeText: "x"}); got != ModeATS {
		t.Fatalf("expected %s, got %s", ModeATS, got)
	}
	if got := modeFor(AnalyzeRequest{ResumeText: "x", JobDescriptionText: "react"}); got != ModeJobMatch {
		t.Fatalf("expected %s, got %s", ModeJobMatch, got)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := requestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	if got := requestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}
