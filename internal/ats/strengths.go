package ats

import (
	"fmt"
	"strings"
)

const (
	strongVerbCount      = 5
	strongMetricCount    = 3
	strongKeywordScore   = 15
	strongStructureScore = 10
	strongSectionScore   = 70
)

func (a *Analyzer) strengths(s Sections, keywords []KeywordMatch) []Strength {
	out := []Strength{}
	if s.Experience.ActionVerbCount >= strongVerbCount {
		out = append(out, Strength{
			Title:       "Strong Action Verbs",
			Description: fmt.Sprintf("Used %d powerful action verbs that demonstrate leadership and initiative", s.Experience.ActionVerbCount),
		})
	}
	if s.Achievements.MetricCount >= strongMetricCount {
		out = append(out, Strength{
			Title:       "Quantified Achievements",
			Description: "Included measurable results and metrics that demonstrate impact",
		})
	}
	if keywordScore(keywords) >= strongKeywordScore {
		out = append(out, Strength{
			Title:       "Industry Keywords",
			Description: "Resume contains relevant industry-specific keywords for ATS optimization",
		})
	}
	if structureScore(s) >= strongStructureScore {
		out = append(out, Strength{
			Title:       "Well-Structured Format",
			Description: "Resume has clear sections that ATS systems can easily parse",
		})
	}
	if s.Contact.Complete() {
		out = append(out, Strength{
			Title:       "Complete Contact Information",
			Description: "Professional contact details are clearly presented",
		})
	}

	var top []string
	for _, r := range s.Results() {
		if r.Score >= strongSectionScore {
			top = append(top, r.Label)
		}
	}
	if len(top) > 0 {
		out = append(out, Strength{
			Title:       "Strong Sections",
			Description: "Top performing sections: " + strings.Join(top, ", "),
		})
	}
	return out
}

// keywordScore awards 3 points per reported keyword found, up to 30.
func keywordScore(keywords []KeywordMatch) int {
	return min(30, 3*foundCount(keywords))
}

// structureScore awards 5 points per core section detected, up to 20.
func structureScore(s Sections) int {
	score := 0
	for _, exists := range []bool{s.Summary.Exists, s.Experience.Exists, s.Education.Exists, s.Skills.Exists} {
		if exists {
			score += 5
		}
	}
	return score
}
