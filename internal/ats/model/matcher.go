package model

import (
	"regexp"
	"strings"
)

// Matcher exposes the compiled patterns of a Model. Unknown pattern names never match.
type Matcher struct {
	named       map[string]*regexp.Regexp
	degrees     []namedRegexp
	jobHeadings []*regexp.Regexp
	jobSkills   []*regexp.Regexp
	actionVerbs []wordPattern
	misspelled  []wordPattern
}

type namedRegexp struct {
	name string
	re   *regexp.Regexp
}

type wordPattern struct {
	word string
	re   *regexp.Regexp
}

func newWordPattern(word string) wordPattern {
	return wordPattern{
		word: word,
		re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(word)) + `\b`),
	}
}

// FindAll returns every match of the named pattern.
func (m *Matcher) FindAll(name, text string) []string {
	re := m.named[name]
	if re == nil {
		return nil
	}
	return re.FindAllString(text, -1)
}

// Count returns the number of matches of the named pattern.
func (m *Matcher) Count(name, text string) int {
	return len(m.FindAll(name, text))
}

// Match reports whether the named pattern matches text.
func (m *Matcher) Match(name, text string) bool {
	re := m.named[name]
	return re != nil && re.MatchString(text)
}

// Find returns the first match of the named pattern.
func (m *Matcher) Find(name, text string) string {
	re := m.named[name]
	if re == nil {
		return ""
	}
	return re.FindString(text)
}

// Submatch returns the first match of the named pattern with its groups.
func (m *Matcher) Submatch(name, text string) []string {
	re := m.named[name]
	if re == nil {
		return nil
	}
	return re.FindStringSubmatch(text)
}

// Split splits text around matches of the named pattern.
func (m *Matcher) Split(name, text string) []string {
	re := m.named[name]
	if re == nil {
		return []string{text}
	}
	return re.Split(text, -1)
}

// Window returns the first match of the named heading pattern followed by at
// most n runes of text.
func (m *Matcher) Window(name, text string, n int) (string, bool) {
	re := m.named[name]
	if re == nil {
		return "", false
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]] + TakeRunes(text[loc[1]:], n), true
}

// Degrees returns the names of the degree patterns matched in text, in model order.
func (m *Matcher) Degrees(text string) []string {
	var out []string
	for _, d := range m.degrees {
		if d.re.MatchString(text) {
			out = append(out, d.name)
		}
	}
	return out
}

// JobHeadings returns the job-description heading patterns.
func (m *Matcher) JobHeadings() []*regexp.Regexp {
	return m.jobHeadings
}

// JobSkills returns the job-description skill category patterns.
func (m *Matcher) JobSkills() []*regexp.Regexp {
	return m.jobSkills
}

// ActionVerbsIn returns the distinct action verbs used in text as whole words.
func (m *Matcher) ActionVerbsIn(text string) []string {
	return wordsIn(m.actionVerbs, text)
}

// MisspellingsIn returns the known misspellings present in text.
func (m *Matcher) MisspellingsIn(text string) []string {
	return wordsIn(m.misspelled, text)
}

func wordsIn(patterns []wordPattern, text string) []string {
	var out []string
	for _, p := range patterns {
		if p.re.MatchString(text) {
			out = append(out, p.word)
		}
	}
	return out
}

// TakeRunes returns at most the first n runes of s.
func TakeRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
