package ats

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const summarySkillLimit = 5

// summaryText renders the fixed-format overview lines shown above the report.
func (a *Analyzer) summaryText(text string, s Sections) string {
	lower := strings.ToLower(text)
	lines := []string{fmt.Sprintf("**Resume Overview**: %d words", s.Formatting.WordCount)}

	if m := a.model.Matcher().Submatch("years", text); len(m) > 1 {
		lines = append(lines, fmt.Sprintf("**Experience**: Approximately %s+ years", m[1]))
	}

	caser := cases.Title(language.English)
	var sections []string
	for _, marker := range a.model.SectionMarkers {
		for _, term := range marker.Terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				sections = append(sections, caser.String(marker.Name))
				break
			}
		}
	}
	if len(sections) > 0 {
		lines = append(lines, "**Sections Included**: "+strings.Join(sections, ", "))
	} else {
		lines = append(lines, "**Sections Included**: None detected")
	}

	var methods []string
	if s.Contact.Email {
		methods = append(methods, "Email")
	}
	if s.Contact.Phone {
		methods = append(methods, "Phone")
	}
	if s.Contact.LinkedIn {
		methods = append(methods, "LinkedIn")
	}
	if len(methods) > 0 {
		lines = append(lines, "**Contact Info**: "+strings.Join(methods, ", "))
	} else {
		lines = append(lines, "**Contact Info**: Incomplete")
	}

	skills := containedKeywords(a.model.SummarySkills, lower)
	if len(skills) > summarySkillLimit {
		skills = skills[:summarySkillLimit]
	}
	if len(skills) > 0 {
		lines = append(lines, "**Key Skills Found**: "+strings.Join(skills, ", "))
	}

	return strings.Join(lines, "\n")
}

func formatAnalysis(s Sections) []FormatAspect {
	contact := FormatAspect{Aspect: "Contact Information", Status: "warning", Message: "Missing email or phone"}
	if s.Contact.Complete() {
		contact.Status = "good"
		contact.Message = "All required contact details present"
	}

	experience := FormatAspect{Aspect: "Work Experience", Status: "error", Message: "No experience listed"}
	if s.Experience.Exists {
		experience.Status = "good"
		experience.Message = fmt.Sprintf("%d positions found", s.Experience.JobCount)
	}

	education := FormatAspect{Aspect: "Education", Status: "warning", Message: "Education section recommended"}
	if s.Education.Exists {
		education.Status = "good"
		education.Message = fmt.Sprintf("%d degree(s) found", len(s.Education.Degrees))
	}

	skills := FormatAspect{Aspect: "Skills Listed", Status: "error", Message: "Add a dedicated skills section"}
	switch {
	case s.Skills.SkillCount >= 8:
		skills.Status = "good"
		skills.Message = fmt.Sprintf("%d skills found", s.Skills.SkillCount)
	case s.Skills.SkillCount > 0:
		skills.Status = "warning"
		skills.Message = fmt.Sprintf("%d skills found", s.Skills.SkillCount)
	}

	words := s.Formatting.WordCount
	length := FormatAspect{Aspect: "Length", Status: "warning"}
	if words >= 300 && words <= 800 {
		length.Status = "good"
	}
	switch {
	case words <= 600:
		length.Message = fmt.Sprintf("%d words - Optimal (1 page)", words)
	case words <= 800:
		length.Message = fmt.Sprintf("%d words - Slightly long (2 pages)", words)
	default:
		length.Message = fmt.Sprintf("%d words - Too long - consider condensing", words)
	}

	return []FormatAspect{contact, experience, education, skills, length}
}
