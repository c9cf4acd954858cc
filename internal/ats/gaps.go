package ats

// Checklist labels reported in contentPresent and contentAbsent.
const (
	GapContact        = "Contact Information"
	GapSummary        = "Professional Summary/Objective"
	GapExperience     = "Work Experience"
	GapEducation      = "Education"
	GapSkills         = "Skills Section"
	GapLinkedIn       = "LinkedIn Profile"
	GapProjects       = "Portfolio/Projects"
	GapCertifications = "Certifications"

	GapMetricsPresent = "Quantified Results"
	GapMetricsAbsent  = "Quantified Results (numbers, percentages, metrics)"
	GapVerbsPresent   = "Action Verbs"
	GapVerbsAbsent    = "Strong Action Verbs"
	GapBullets        = "Bullet Point Formatting"
)

// ContentGaps splits the content checklist into present and absent items.
type ContentGaps struct {
	Present []string
	Absent  []string
}

// Has reports whether item is present.
func (g ContentGaps) Has(item string) bool {
	for _, p := range g.Present {
		if p == item {
			return true
		}
	}
	return false
}

func (a *Analyzer) contentGaps(text string, s Sections) ContentGaps {
	mt := a.model.Matcher()
	checks := []struct {
		present bool
		label   string
		missing string
	}{
		{s.Contact.Complete(), GapContact, GapContact},
		{s.Summary.Exists, GapSummary, GapSummary},
		{s.Experience.Exists, GapExperience, GapExperience},
		{s.Education.Exists, GapEducation, GapEducation},
		{s.Skills.Exists, GapSkills, GapSkills},
		{mt.Match("linkedinProfile", text), GapLinkedIn, GapLinkedIn},
		{mt.Match("projects", text), GapProjects, GapProjects},
		{mt.Match("certifications", text), GapCertifications, GapCertifications},
		{mt.Match("metric", text), GapMetricsPresent, GapMetricsAbsent},
		{mt.Match("actionVerbAny", text), GapVerbsPresent, GapVerbsAbsent},
		{mt.Match("bullet", text), GapBullets, GapBullets},
	}

	gaps := ContentGaps{Present: []string{}, Absent: []string{}}
	for _, c := range checks {
		if c.present {
			gaps.Present = append(gaps.Present, c.label)
		} else {
			gaps.Absent = append(gaps.Absent, c.missing)
		}
	}
	return gaps
}
