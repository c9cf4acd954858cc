package ats

import (
	"fmt"
	"math"
)

// finalScore is the weighted average of the section scores, rounded to the
// nearest integer.
func finalScore(results []SectionResult) int {
	weighted := 0.0
	weights := 0.0
	for _, r := range results {
		weighted += float64(r.Score) * r.Weight
		weights += r.Weight
	}
	if weights <= 0 {
		return 0
	}
	return clampScore(int(math.Round(weighted / weights)))
}

func overallAssessment(score int) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Excellent Resume (%d%%) - Your resume is well-optimized for ATS systems and clearly communicates your qualifications. Strong across all sections with good keyword density and quantified achievements.", score)
	case score >= 80:
		return fmt.Sprintf("Very Good Resume (%d%%) - Your resume is competitive and ATS-friendly. Focus on the highlighted improvements to move to the excellent range.", score)
	case score >= 70:
		return fmt.Sprintf("Good Resume (%d%%) - Your resume covers essential sections but needs improvements in keyword optimization and achievement quantification.", score)
	case score >= 60:
		return fmt.Sprintf("Acceptable Resume (%d%%) - Your resume has the basic structure but is missing key elements. Prioritize adding critical keywords and quantified results.", score)
	default:
		return fmt.Sprintf("Needs Work (%d%%) - Your resume is missing critical sections and content. Start by adding contact info, professional summary, and action verbs to experience.", score)
	}
}

// breakdown reports each section's weighted contribution to the final score.
func breakdown(results []SectionResult) []ScoreComponent {
	out := make([]ScoreComponent, 0, len(results))
	for _, r := range results {
		out = append(out, ScoreComponent{
			Name:      r.Label,
			Points:    round2(float64(r.Score) * r.Weight),
			MaxPoints: round2(maxSectionScore * r.Weight),
			Details:   r.Details,
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
