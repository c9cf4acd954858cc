package ats

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-ats/internal/ats/model"
)

const (
	maxJobKeywords   = 25
	minJobTokenRunes = 3
	maxJobTokenRunes = 29
)

// matchJobDescription mines skill tokens from a job posting and checks each
// against the resume. Every token is reported as critical.
func (a *Analyzer) matchJobDescription(resume, jd string) []KeywordMatch {
	zone := a.jobZone(jd)
	mt := a.model.Matcher()

	var candidates []string
	for _, re := range mt.JobSkills() {
		candidates = append(candidates, re.FindAllString(zone, -1)...)
	}
	for _, raw := range mt.Split("jobTokenDelimiter", zone) {
		term := strings.TrimSpace(raw)
		n := utf8.RuneCountInString(term)
		if n < minJobTokenRunes || n > maxJobTokenRunes || !hasLetter(term) {
			continue
		}
		if a.containsStopWord(term) {
			continue
		}
		candidates = append(candidates, term)
	}

	lowerResume := strings.ToLower(resume)
	seen := make(map[string]bool, len(candidates))
	out := make([]KeywordMatch, 0, maxJobKeywords)
	for _, c := range candidates {
		word := strings.ToLower(strings.TrimSpace(c))
		if utf8.RuneCountInString(word) < minJobTokenRunes || seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, KeywordMatch{
			Word:       word,
			Found:      strings.Contains(lowerResume, word),
			Importance: ImportanceCritical,
		})
		if len(out) == maxJobKeywords {
			break
		}
	}
	return out
}

// jobZone concatenates the text that follows each skills or requirements
// heading. Without a heading the whole posting is used.
func (a *Analyzer) jobZone(jd string) string {
	limit := a.model.Windows.JobZone
	var b strings.Builder
	for _, re := range a.model.Matcher().JobHeadings() {
		loc := re.FindStringIndex(jd)
		if loc == nil {
			continue
		}
		rest := re.ReplaceAllString(jd[loc[1]:], " ")
		b.WriteString(model.TakeRunes(rest, limit))
		b.WriteString(" ")
	}
	if b.Len() == 0 {
		return jd
	}
	return b.String()
}

func (a *Analyzer) containsStopWord(term string) bool {
	words := strings.FieldsFunc(term, func(r rune) bool {
		return !(r == '_' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	})
	for _, w := range words {
		if a.model.IsStopWord(w) {
			return true
		}
	}
	return false
}

func jobMatchSummary(keywords []KeywordMatch) *JobMatch {
	if len(keywords) == 0 {
		return nil
	}
	m := &JobMatch{Matched: []string{}, Missing: []string{}}
	for _, k := range keywords {
		if k.Found {
			m.Matched = append(m.Matched, k.Word)
		} else {
			m.Missing = append(m.Missing, k.Word)
		}
	}
	m.MatchPercentage = int(math.Round(100 * float64(len(m.Matched)) / float64(len(keywords))))
	return m
}
