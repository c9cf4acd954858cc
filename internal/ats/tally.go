package ats

import (
	"strings"
	"unicode"
)

const maxSectionScore = 100

// tally accumulates awarded points and detail lines for one extractor.
type tally struct {
	total      float64
	components []ScoreComponent
	details    []string
}

// award records a component worth points out of max. A blank detail is skipped.
func (t *tally) award(name string, points, max float64, detail string) {
	if points < 0 {
		points = 0
	}
	if points > max {
		points = max
	}
	c := ScoreComponent{Name: name, Points: points, MaxPoints: max}
	if detail != "" {
		c.Details = []string{detail}
		t.details = append(t.details, detail)
	}
	t.components = append(t.components, c)
	t.total += points
}

// deduct removes points from the running total without going below zero.
func (t *tally) deduct(points float64, detail string) {
	t.total -= points
	if t.total < 0 {
		t.total = 0
	}
	if detail != "" {
		t.details = append(t.details, detail)
	}
}

func (t *tally) note(detail string) {
	if detail != "" {
		t.details = append(t.details, detail)
	}
}

func (t *tally) result(section Section, exists bool, weight float64) SectionResult {
	details := t.details
	if details == nil {
		details = []string{}
	}
	return SectionResult{
		Section:    section,
		Label:      section.Label(),
		Score:      clampScore(int(t.total)),
		Exists:     exists,
		Details:    details,
		Weight:     weight,
		Components: t.components,
	}
}

// absent is the result of an extractor whose section heading was not found.
func absent(section Section, weight float64, detail string) SectionResult {
	return SectionResult{
		Section: section,
		Label:   section.Label(),
		Score:   0,
		Exists:  false,
		Details: []string{detail},
		Weight:  weight,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxSectionScore {
		return maxSectionScore
	}
	return score
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// containedKeywords returns the keywords whose lowercase form occurs in lowerText.
func containedKeywords(keywords []string, lowerText string) []string {
	var out []string
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" || seen[key] {
			continue
		}
		if strings.Contains(lowerText, key) {
			seen[key] = true
			out = append(out, k)
		}
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
