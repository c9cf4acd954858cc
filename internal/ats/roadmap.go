package ats

import (
	"fmt"
	"math"
	"sort"

	"resume-ats/internal/ats/model"
)

const (
	maxRoadmapSteps      = 15
	defaultRoadmapWeight = 0.08
	jobMatchWeight       = 0.10
	targetScore          = 100
)

// roadmap orders every improvement by priority and expected gain and projects
// the cumulative score after each step.
func (a *Analyzer) roadmap(score int, improvements []Improvement) Roadmap {
	type candidate struct {
		imp       Improvement
		increment float64
	}
	candidates := make([]candidate, 0, len(improvements))
	for _, imp := range improvements {
		w := a.improvementWeight(imp.Section)
		candidates = append(candidates, candidate{imp: imp, increment: round2(imp.ScoreImpactPercentage * w)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := priorityRank(candidates[i].imp.Priority), priorityRank(candidates[j].imp.Priority)
		if pi != pj {
			return pi < pj
		}
		return candidates[i].increment > candidates[j].increment
	})

	steps := make([]RoadmapStep, 0, len(candidates))
	cumulative := float64(score)
	for i, c := range candidates {
		before := cumulative
		cumulative = math.Min(targetScore, cumulative+c.increment)
		whatToAdd := c.imp.WhatToAdd
		if len(whatToAdd) == 0 {
			whatToAdd = []string{c.imp.Description}
		}
		steps = append(steps, RoadmapStep{
			Step:                     i + 1,
			Title:                    c.imp.Title,
			Section:                  c.imp.Section,
			Priority:                 c.imp.Priority,
			Description:              c.imp.Description,
			CurrentScore:             round2(before),
			ScoreIncrementPercentage: c.increment,
			ProjectedScoreAfter:      round2(cumulative),
			WhatToAdd:                whatToAdd,
			EstimatedTimeInMinutes:   estimatedMinutes(c.imp.Priority),
		})
	}

	total := len(steps)
	if len(steps) > maxRoadmapSteps {
		steps = steps[:maxRoadmapSteps]
	}
	totalMinutes := 0
	for _, st := range steps {
		totalMinutes += st.EstimatedTimeInMinutes
	}
	return Roadmap{
		CurrentScore:            score,
		TargetScore:             targetScore,
		ScoreGapToClose:         targetScore - score,
		TotalImprovementSteps:   total,
		Steps:                   steps,
		EstimatedTimeToComplete: totalMinutes,
		Summary:                 fmt.Sprintf("Follow these %d improvements in order to reach 100%% ATS score. High priority items should be completed first.", total),
	}
}

// improvementWeight maps an improvement's section label to the share of the
// final score it can move.
func (a *Analyzer) improvementWeight(section string) float64 {
	if section == jobMatchSection {
		return jobMatchWeight
	}
	for _, key := range model.SectionKeys {
		if Section(key).Label() == section {
			return a.model.Weight(key)
		}
	}
	return defaultRoadmapWeight
}

func estimatedMinutes(p Priority) int {
	switch p {
	case PriorityHigh:
		return 15
	case PriorityMedium:
		return 10
	default:
		return 5
	}
}
