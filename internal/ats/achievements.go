package ats

import (
	"fmt"

	"resume-ats/internal/ats/model"
)

func (a *Analyzer) analyzeAchievements(text string) AchievementsResult {
	mt := a.model.Matcher()
	weight := a.model.Weight(model.SectionAchievements)
	metrics := mt.Count("metric", text)

	if !mt.Match("achievementsHeading", text) {
		return AchievementsResult{
			SectionResult: absent(SectionAchievements, weight, "No achievements or awards section found"),
			MetricCount:   metrics,
		}
	}

	var t tally
	t.award("Presence", 15, 15, "Achievements section found")
	switch {
	case metrics >= 5:
		t.award("Quantified Results", 35, 35, fmt.Sprintf("Highly quantified achievements (%d metrics)", metrics))
	case metrics >= 3:
		t.award("Quantified Results", 25, 35, fmt.Sprintf("Quantified achievements (%d metrics)", metrics))
	default:
		t.award("Quantified Results", 15, 35, "Add numbers to your achievements")
	}

	return AchievementsResult{
		SectionResult: t.result(SectionAchievements, true, weight),
		MetricCount:   metrics,
	}
}
