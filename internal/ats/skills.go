package ats

import (
	"fmt"
	"strings"

	"resume-ats/internal/ats/model"
)

func (a *Analyzer) analyzeSkills(text string) SkillsResult {
	mt := a.model.Matcher()
	weight := a.model.Weight(model.SectionSkills)

	window, ok := mt.Window("skillsHeading", text, a.model.Windows.Skills)
	if !ok {
		return SkillsResult{
			SectionResult: absent(SectionSkills, weight, "No dedicated skills section found"),
			Skills:        []string{},
		}
	}
	lower := strings.ToLower(window)

	var t tally
	t.award("Presence", 20, 20, "Skills section found")

	skills := containedKeywords(a.model.Keywords.All(), lower)
	if skills == nil {
		skills = []string{}
	}
	n := len(skills)
	switch {
	case n >= 15:
		t.award("Keyword Coverage", 30, 30, fmt.Sprintf("Excellent skill coverage (%d keywords)", n))
	case n >= 10:
		t.award("Keyword Coverage", 20, 30, fmt.Sprintf("Good skill coverage (%d keywords)", n))
	case n >= 5:
		t.award("Keyword Coverage", 15, 30, fmt.Sprintf("Moderate skill coverage (%d keywords)", n))
	default:
		t.award("Keyword Coverage", 0, 30, fmt.Sprintf("Only %d recognized skills - add more", n))
	}

	if mt.Match("skillCategory", window) {
		t.award("Categories", 15, 15, "Skills organized by category")
	} else {
		t.award("Categories", 0, 15, "Group skills into categories")
	}

	if mt.Match("proficiency", window) {
		t.award("Proficiency", 15, 15, "Proficiency levels indicated")
	} else {
		t.award("Proficiency", 0, 15, "Consider adding proficiency levels")
	}

	technical := len(containedKeywords(a.model.Keywords.Tech, lower)) > 0
	soft := len(containedKeywords(a.model.SoftSkills, lower)) > 0
	if technical && soft {
		t.award("Balance", 15, 15, "Balanced technical and soft skills")
	} else {
		t.award("Balance", 0, 15, "Include both technical and soft skills")
	}

	return SkillsResult{
		SectionResult: t.result(SectionSkills, true, weight),
		SkillCount:    n,
		Skills:        skills,
	}
}
