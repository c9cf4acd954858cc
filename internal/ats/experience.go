package ats

import (
	"fmt"
	"math"

	"resume-ats/internal/ats/model"
)

func (a *Analyzer) analyzeExperience(text string) ExperienceResult {
	mt := a.model.Matcher()
	weight := a.model.Weight(model.SectionExperience)

	window, ok := mt.Window("experienceHeading", text, a.model.Windows.Experience)
	if !ok {
		return ExperienceResult{SectionResult: absent(SectionExperience, weight, "No work experience section found")}
	}

	var t tally
	t.award("Presence", 15, 15, "Experience section found")

	jobs := estimateJobs(mt.Count("jobTitle", window), mt.Count("companyIndicator", window))
	switch {
	case jobs >= 3:
		t.award("Positions", 20, 20, fmt.Sprintf("%d positions detected", jobs))
	case jobs >= 1:
		t.award("Positions", 15, 20, fmt.Sprintf("%d position(s) detected", jobs))
	default:
		t.award("Positions", 0, 20, "Could not detect job titles or companies")
	}

	verbs := len(mt.ActionVerbsIn(window))
	switch {
	case verbs >= 10:
		t.award("Action Verbs", 25, 25, fmt.Sprintf("Excellent use of action verbs (%d)", verbs))
	case verbs >= 5:
		t.award("Action Verbs", 15, 25, fmt.Sprintf("Good action verbs (%d)", verbs))
	case verbs > 0:
		t.award("Action Verbs", 10, 25, fmt.Sprintf("Some action verbs (%d) - add more", verbs))
	default:
		t.award("Action Verbs", 0, 25, "No action verbs found - start bullets with strong verbs")
	}

	metrics := mt.Count("metric", window)
	switch {
	case metrics >= 5:
		t.award("Quantified Results", 25, 25, fmt.Sprintf("Strong quantified results (%d)", metrics))
	case metrics >= 3:
		t.award("Quantified Results", 15, 25, fmt.Sprintf("Good quantified results (%d)", metrics))
	case metrics > 0:
		t.award("Quantified Results", 10, 25, fmt.Sprintf("Few quantified results (%d)", metrics))
	default:
		t.award("Quantified Results", 0, 25, "No quantified results - add numbers and percentages")
	}

	return ExperienceResult{
		SectionResult:   t.result(SectionExperience, true, weight),
		JobCount:        jobs,
		ActionVerbCount: verbs,
		MetricCount:     metrics,
	}
}

// estimateJobs assumes roughly 1.5 title or company mentions per position.
func estimateJobs(titleHits, companyHits int) int {
	hits := max(titleHits, companyHits)
	if hits == 0 {
		return 0
	}
	return int(math.Ceil(float64(hits) / 1.5))
}
