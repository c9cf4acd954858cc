// Package model holds the versioned scoring model used by the ATS analyzer:
// keyword tables, action verbs, weights, regex patterns and improvement copy.
package model

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed scoring_model.yaml
var embeddedModel []byte

// DefaultImpact is the score impact used when an improvement title has no entry.
const DefaultImpact = 3

// ErrInvalidModel is returned when a scoring model fails validation.
var ErrInvalidModel = errors.New("invalid scoring model")

// Section keys used by the weight table.
const (
	SectionContact      = "contact"
	SectionSummary      = "summary"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionAchievements = "achievements"
	SectionFormatting   = "formatting"
)

// SectionKeys lists the weighted sections in report order.
var SectionKeys = []string{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionAchievements,
	SectionFormatting,
}

// Pattern names every model must define.
var requiredPatterns = []string{
	"email", "phone", "linkedin", "linkedinProfile", "website",
	"metric", "summaryMetric", "bullet", "years", "allCaps", "actionVerbAny",
	"projects", "certifications",
	"summaryHeading", "experienceHeading", "educationHeading", "skillsHeading", "achievementsHeading",
	"jobTitle", "companyIndicator", "institution", "graduation", "gpa",
	"skillCategory", "proficiency", "jobTokenDelimiter", "standardHeading",
}

// Keywords groups the industry keyword tables by category.
type Keywords struct {
	Tech       []string `yaml:"tech"`
	Management []string `yaml:"management"`
	Marketing  []string `yaml:"marketing"`
	General    []string `yaml:"general"`
}

// All returns the tables concatenated in category order.
func (k Keywords) All() []string {
	out := make([]string, 0, len(k.Tech)+len(k.Management)+len(k.Marketing)+len(k.General))
	out = append(out, k.Tech...)
	out = append(out, k.Management...)
	out = append(out, k.Marketing...)
	out = append(out, k.General...)
	return out
}

// SectionMarker names a resume section detected by plain substring terms.
type SectionMarker struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

// Windows holds the rune counts taken after each section heading.
type Windows struct {
	Summary       int `yaml:"summary"`
	Experience    int `yaml:"experience"`
	Education     int `yaml:"education"`
	Skills        int `yaml:"skills"`
	JobZone       int `yaml:"jobZone"`
	KeywordPrefix int `yaml:"keywordPrefix"`
}

// NamedPattern is an ordered regex entry.
type NamedPattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// ImprovementCopy is the canned text attached to an improvement title.
type ImprovementCopy struct {
	Impact      int      `yaml:"impact"`
	Description string   `yaml:"description"`
	ImpactText  string   `yaml:"impactText"`
	WhatToAdd   []string `yaml:"whatToAdd"`
}

// Model is the decoded and compiled scoring model. It is read-only after Load.
type Model struct {
	Version          string                     `yaml:"version"`
	Weights          map[string]float64         `yaml:"weights"`
	Keywords         Keywords                   `yaml:"keywords"`
	ActionVerbs      []string                   `yaml:"actionVerbs"`
	SoftSkills       []string                   `yaml:"softSkills"`
	SummarySkills    []string                   `yaml:"summarySkills"`
	Misspellings     []string                   `yaml:"misspellings"`
	SectionMarkers   []SectionMarker            `yaml:"sectionMarkers"`
	Windows          Windows                    `yaml:"windows"`
	Patterns         map[string]string          `yaml:"patterns"`
	Degrees          []NamedPattern             `yaml:"degrees"`
	JobHeadings      []string                   `yaml:"jobHeadings"`
	JobSkillPatterns []string                   `yaml:"jobSkillPatterns"`
	StopWords        []string                   `yaml:"stopWords"`
	Improvements     map[string]ImprovementCopy `yaml:"improvements"`

	matcher *Matcher
	stop    map[string]struct{}
}

var (
	defaultOnce  sync.Once
	defaultModel *Model
	defaultErr   error
)

// Default returns the embedded scoring model, loading it on first use.
func Default() *Model {
	defaultOnce.Do(func() {
		defaultModel, defaultErr = Load(embeddedModel)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded scoring model: %v", defaultErr))
	}
	return defaultModel
}

// LoadFile reads a scoring model from disk.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring model %s: %w", path, err)
	}
	m, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load scoring model %s: %w", path, err)
	}
	return m, nil
}

// Load decodes, validates and compiles a scoring model.
func Load(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode scoring model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	matcher, err := compile(&m)
	if err != nil {
		return nil, err
	}
	m.matcher = matcher
	m.stop = make(map[string]struct{}, len(m.StopWords))
	for _, w := range m.StopWords {
		m.stop[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return &m, nil
}

func (m *Model) validate() error {
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidModel)
	}
	total := 0.0
	for _, key := range SectionKeys {
		w, ok := m.Weights[key]
		if !ok {
			return fmt.Errorf("%w: weight for %s is required", ErrInvalidModel, key)
		}
		if w <= 0 || w > 1 {
			return fmt.Errorf("%w: weight for %s must be in (0,1]", ErrInvalidModel, key)
		}
		total += w
	}
	if len(m.Weights) != len(SectionKeys) {
		return fmt.Errorf("%w: weights must contain exactly %d sections", ErrInvalidModel, len(SectionKeys))
	}
	if math.Abs(total-1) > 1e-6 {
		return fmt.Errorf("%w: weights must total 1.00, got %.4f", ErrInvalidModel, total)
	}
	if len(m.Keywords.All()) == 0 {
		return fmt.Errorf("%w: keyword tables are empty", ErrInvalidModel)
	}
	if len(m.ActionVerbs) == 0 {
		return fmt.Errorf("%w: actionVerbs is required", ErrInvalidModel)
	}
	for _, name := range requiredPatterns {
		if strings.TrimSpace(m.Patterns[name]) == "" {
			return fmt.Errorf("%w: pattern %q is required", ErrInvalidModel, name)
		}
	}
	w := m.Windows
	if w.Summary <= 0 || w.Experience <= 0 || w.Education <= 0 || w.Skills <= 0 || w.JobZone <= 0 || w.KeywordPrefix <= 0 {
		return fmt.Errorf("%w: all windows must be positive", ErrInvalidModel)
	}
	return nil
}

// Matcher returns the compiled pattern set.
func (m *Model) Matcher() *Matcher {
	return m.matcher
}

// Weight returns the weight for a section key.
func (m *Model) Weight(section string) float64 {
	return m.Weights[section]
}

// IsStopWord reports whether word is in the stop-word list.
func (m *Model) IsStopWord(word string) bool {
	_, ok := m.stop[strings.ToLower(word)]
	return ok
}

// ImprovementFor returns the canned copy for an improvement title and its score impact.
func (m *Model) ImprovementFor(title string) (ImprovementCopy, int) {
	c, ok := m.Improvements[title]
	if !ok || c.Impact <= 0 {
		return c, DefaultImpact
	}
	return c, c.Impact
}

func compile(m *Model) (*Matcher, error) {
	mt := &Matcher{
		named:       make(map[string]*regexp.Regexp, len(m.Patterns)),
		actionVerbs: make([]wordPattern, 0, len(m.ActionVerbs)),
		misspelled:  make([]wordPattern, 0, len(m.Misspellings)),
	}
	for name, expr := range m.Patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidModel, name, err)
		}
		mt.named[name] = re
	}
	for _, d := range m.Degrees {
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: degree %q: %v", ErrInvalidModel, d.Name, err)
		}
		mt.degrees = append(mt.degrees, namedRegexp{name: d.Name, re: re})
	}
	for i, expr := range m.JobHeadings {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: jobHeadings[%d]: %v", ErrInvalidModel, i, err)
		}
		mt.jobHeadings = append(mt.jobHeadings, re)
	}
	for i, expr := range m.JobSkillPatterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: jobSkillPatterns[%d]: %v", ErrInvalidModel, i, err)
		}
		mt.jobSkills = append(mt.jobSkills, re)
	}
	for _, v := range m.ActionVerbs {
		mt.actionVerbs = append(mt.actionVerbs, newWordPattern(v))
	}
	for _, w := range m.Misspellings {
		mt.misspelled = append(mt.misspelled, newWordPattern(w))
	}
	return mt, nil
}
