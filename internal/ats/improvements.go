package ats

import (
	"fmt"
	"sort"
	"strings"
)

const (
	maxImprovements     = 10
	maxMissingJobTitles = 5
	jobMatchSection     = "Job Match"
)

type improvementRule struct {
	section  string
	title    string
	priority Priority
	applies  func(s Sections, gaps ContentGaps) bool
}

var improvementRules = []improvementRule{
	{SectionContact.Label(), "Add Professional Email", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return !s.Contact.Email
	}},
	{SectionContact.Label(), "Add Phone Number", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return !s.Contact.Phone
	}},
	{SectionContact.Label(), "Add LinkedIn Profile", PriorityMedium, func(s Sections, _ ContentGaps) bool {
		return !s.Contact.LinkedIn
	}},
	{SectionSummary.Label(), "Add Professional Summary", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return !s.Summary.Exists
	}},
	{SectionSummary.Label(), "Enhance Your Summary", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return s.Summary.Exists && s.Summary.Score < 50
	}},
	{SectionExperience.Label(), "Create Work Experience Section", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return !s.Experience.Exists
	}},
	{SectionExperience.Label(), "Use Stronger Action Verbs", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return s.Experience.Exists && s.Experience.ActionVerbCount < 5
	}},
	{SectionExperience.Label(), "Add Quantified Results", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return s.Experience.Exists && s.Experience.Score < 70
	}},
	{SectionEducation.Label(), "Add Education Section", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return !s.Education.Exists
	}},
	{SectionEducation.Label(), "Complete Education Details", PriorityMedium, func(s Sections, _ ContentGaps) bool {
		return s.Education.Exists && s.Education.Score < 50
	}},
	{SectionSkills.Label(), "Create Dedicated Skills Section", PriorityHigh, func(s Sections, _ ContentGaps) bool {
		return !s.Skills.Exists
	}},
	{SectionSkills.Label(), "Expand Skills List", PriorityMedium, func(s Sections, _ ContentGaps) bool {
		return s.Skills.Exists && s.Skills.SkillCount < 8
	}},
	{SectionAchievements.Label(), "Add Achievements/Awards", PriorityMedium, func(s Sections, _ ContentGaps) bool {
		return !s.Achievements.Exists
	}},
	{SectionFormatting.Label(), "Improve Resume Formatting", PriorityMedium, func(s Sections, _ ContentGaps) bool {
		return s.Formatting.Score < 60
	}},
	{GapCertifications, "Add Certifications Section", PriorityMedium, func(_ Sections, g ContentGaps) bool {
		return !g.Has(GapCertifications)
	}},
	{GapProjects, "Add Projects or Achievements Section", PriorityMedium, func(_ Sections, g ContentGaps) bool {
		return !g.Has(GapProjects)
	}},
}

// improvements evaluates the rule table, then appends the job-description rule.
// The result is ordered by priority with rule order kept within a priority.
func (a *Analyzer) improvements(s Sections, gaps ContentGaps, jobKeywords []KeywordMatch) []Improvement {
	var out []Improvement
	for _, rule := range improvementRules {
		if !rule.applies(s, gaps) {
			continue
		}
		copyText, impact := a.model.ImprovementFor(rule.title)
		description := copyText.Description
		if rule.title == "Expand Skills List" {
			description = fmt.Sprintf("You have %d recognized skills. %s", s.Skills.SkillCount, description)
		}
		out = append(out, Improvement{
			Section:               rule.section,
			Title:                 rule.title,
			Description:           description,
			Priority:              rule.priority,
			ScoreImpactPercentage: float64(impact),
			Impact:                copyText.ImpactText,
			WhatToAdd:             copyText.WhatToAdd,
		})
	}

	if missing := missingCritical(jobKeywords, maxMissingJobTitles); len(missing) > 0 {
		title := fmt.Sprintf("Add Missing Job Requirements (%d)", len(missing))
		_, impact := a.model.ImprovementFor(title)
		out = append(out, Improvement{
			Section:               jobMatchSection,
			Title:                 title,
			Description:           fmt.Sprintf("This job posting emphasizes: %s. Add these keywords where relevant in your experience.", strings.Join(missing, ", ")),
			Priority:              PriorityHigh,
			ScoreImpactPercentage: float64(impact),
			Impact:                "Critical for passing initial ATS screening",
			WhatToAdd:             []string{"Mention " + strings.Join(missing, ", ") + " in your skills and experience where accurate"},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	if out == nil {
		out = []Improvement{}
	}
	return out
}

func missingCritical(keywords []KeywordMatch, limit int) []string {
	var out []string
	for _, k := range keywords {
		if k.Found || k.Importance != ImportanceCritical {
			continue
		}
		out = append(out, k.Word)
		if len(out) == limit {
			break
		}
	}
	return out
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
