package ats

import (
	"fmt"
	"math"
)

// Suggestion is an improvement with its expected score gain.
type Suggestion struct {
	Order                int      `json:"order"`
	Title                string   `json:"title"`
	Section              string   `json:"section"`
	Description          string   `json:"description"`
	Impact               string   `json:"impact"`
	PercentageIncrease   float64  `json:"percentageIncrease"`
	WhatToAdd            []string `json:"whatToAdd"`
	EstimatedTimeMinutes int      `json:"estimatedTimeMinutes"`
	Difficulty           string   `json:"difficultyLevel"`
}

// SuggestionGroups splits suggestions by priority. Order restarts in each group.
type SuggestionGroups struct {
	High   []Suggestion `json:"high"`
	Medium []Suggestion `json:"medium"`
	Low    []Suggestion `json:"low"`
}

// Suggestions is every improvement grouped by priority with the projected gain.
type Suggestions struct {
	CurrentScore              int              `json:"currentScore"`
	TotalSuggestions          int              `json:"totalSuggestions"`
	HighPriorityCount         int              `json:"highPriorityCount"`
	MediumPriorityCount       int              `json:"mediumPriorityCount"`
	LowPriorityCount          int              `json:"lowPriorityCount"`
	Grouped                   SuggestionGroups `json:"suggestionsGrouped"`
	EstimatedScoreImprovement float64          `json:"estimatedScoreImprovement"`
	ProjectedScore            float64          `json:"projectedScore"`
	Summary                   string           `json:"summary,omitempty"`
}

func (a *Analyzer) suggestions(score int, improvements []Improvement) Suggestions {
	out := Suggestions{
		CurrentScore:     score,
		TotalSuggestions: len(improvements),
		Grouped: SuggestionGroups{
			High:   []Suggestion{},
			Medium: []Suggestion{},
			Low:    []Suggestion{},
		},
		ProjectedScore: float64(score),
	}
	if len(improvements) == 0 {
		return out
	}

	total := 0.0
	for _, imp := range improvements {
		gain := round1(imp.ScoreImpactPercentage * a.improvementWeight(imp.Section))
		total += gain

		var group *[]Suggestion
		switch imp.Priority {
		case PriorityHigh:
			group = &out.Grouped.High
		case PriorityMedium:
			group = &out.Grouped.Medium
		default:
			group = &out.Grouped.Low
		}
		impact := imp.Impact
		if impact == "" {
			impact = defaultImpactText
		}
		whatToAdd := imp.WhatToAdd
		if len(whatToAdd) == 0 {
			whatToAdd = []string{imp.Description}
		}
		*group = append(*group, Suggestion{
			Order:                len(*group) + 1,
			Title:                imp.Title,
			Section:              imp.Section,
			Description:          imp.Description,
			Impact:               impact,
			PercentageIncrease:   gain,
			WhatToAdd:            whatToAdd,
			EstimatedTimeMinutes: estimatedMinutes(imp.Priority),
			Difficulty:           difficulty(imp.Priority),
		})
	}

	out.HighPriorityCount = len(out.Grouped.High)
	out.MediumPriorityCount = len(out.Grouped.Medium)
	out.LowPriorityCount = len(out.Grouped.Low)
	out.EstimatedScoreImprovement = round1(total)
	out.ProjectedScore = round1(math.Min(targetScore, float64(score)+total))
	out.Summary = fmt.Sprintf("By implementing all %d suggestions, you could improve your score from %d%% to %g%% (+%g%%)",
		len(improvements), score, out.ProjectedScore, out.EstimatedScoreImprovement)
	return out
}

func difficulty(p Priority) string {
	switch p {
	case PriorityHigh:
		return "easy"
	case PriorityMedium:
		return "moderate"
	default:
		return "quick"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
