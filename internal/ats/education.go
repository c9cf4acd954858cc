package ats

import (
	"fmt"
	"strconv"

	"resume-ats/internal/ats/model"
)

const strongGPA = 3.5

func (a *Analyzer) analyzeEducation(text string) EducationResult {
	mt := a.model.Matcher()
	weight := a.model.Weight(model.SectionEducation)

	window, ok := mt.Window("educationHeading", text, a.model.Windows.Education)
	if !ok {
		return EducationResult{
			SectionResult: absent(SectionEducation, weight, "No education section found"),
			Degrees:       []string{},
		}
	}

	var t tally
	t.award("Presence", 20, 20, "Education section found")

	degrees := mt.Degrees(window)
	if degrees == nil {
		degrees = []string{}
	}
	if len(degrees) > 0 {
		for _, d := range degrees {
			t.award("Degree: "+d, 20, 20, "Degree found: "+d)
		}
	} else {
		t.note("No degree type detected")
	}

	if mt.Match("institution", window) {
		t.award("Institution", 15, 15, "Institution listed")
	} else {
		t.award("Institution", 0, 15, "Add the institution name")
	}

	if mt.Match("graduation", window) {
		t.award("Graduation", 15, 15, "Graduation date included")
	} else {
		t.award("Graduation", 0, 15, "Add a graduation year")
	}

	if m := mt.Submatch("gpa", window); len(m) > 1 {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
			if gpa >= strongGPA {
				t.award("GPA", 15, 15, fmt.Sprintf("Strong GPA (%.2f)", gpa))
			} else {
				t.award("GPA", 0, 15, fmt.Sprintf("GPA listed (%.2f)", gpa))
			}
		}
	}

	return EducationResult{
		SectionResult: t.result(SectionEducation, true, weight),
		Degrees:       degrees,
	}
}
