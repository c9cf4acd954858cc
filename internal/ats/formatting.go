package ats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-ats/internal/ats/model"
)

func (a *Analyzer) analyzeFormatting(text string) FormattingResult {
	mt := a.model.Matcher()
	weight := a.model.Weight(model.SectionFormatting)

	lines := nonBlankLines(text)
	avg := 0.0
	if len(lines) > 0 {
		total := 0
		for _, line := range lines {
			total += utf8.RuneCountInString(line)
		}
		avg = float64(total) / float64(len(lines))
	}

	var t tally
	if avg >= 40 && avg <= 100 {
		t.award("Line Length", 15, 15, fmt.Sprintf("Good line length (avg %.0f chars)", avg))
	} else {
		t.award("Line Length", 0, 15, fmt.Sprintf("Line length could be improved (avg %.0f chars)", avg))
	}

	bullets := mt.Count("bullet", text)
	switch {
	case bullets > 10:
		t.award("Bullets", 20, 20, fmt.Sprintf("Good use of bullet points (%d)", bullets))
	case bullets > 3:
		t.award("Bullets", 10, 20, fmt.Sprintf("Some bullet points (%d) - use more", bullets))
	default:
		t.award("Bullets", 0, 20, "Use bullet points to improve readability")
	}

	caps := mt.Count("allCaps", text)
	if float64(caps) < float64(len(lines))*0.3 {
		t.award("Capitalization", 15, 15, "Appropriate capitalization")
	} else {
		t.award("Capitalization", 0, 15, "Reduce excessive capitalization")
	}

	words := wordCount(text)
	switch {
	case words >= 300 && words <= 600:
		t.award("Length", 20, 20, fmt.Sprintf("Optimal length (%d words)", words))
	case words < 150:
		t.award("Length", 0, 20, fmt.Sprintf("Resume too short (%d words)", words))
	case words > 800:
		t.award("Length", 10, 20, fmt.Sprintf("Resume is long (%d words) - consider condensing", words))
	case words < 300:
		t.award("Length", 0, 20, fmt.Sprintf("Resume could be longer (%d words)", words))
	default:
		t.award("Length", 0, 20, fmt.Sprintf("Resume slightly long (%d words)", words))
	}

	if misspelled := mt.MisspellingsIn(text); len(misspelled) > 0 {
		t.note("Possible misspellings: " + strings.Join(misspelled, ", "))
	}

	return FormattingResult{
		SectionResult: t.result(SectionFormatting, true, weight),
		WordCount:     words,
		LineCount:     len(lines),
		BulletCount:   bullets,
	}
}
