// Package ats scores resume text against applicant-tracking heuristics.
//
// An Analyzer runs seven independent section extractors over the text,
// combines their scores with the model's weights and derives strengths,
// improvements, parser diagnostics, keyword matches and an optional
// job-description match.
// Analyzers hold no mutable state and are safe for concurrent use.
package ats

import (
	"strings"

	"resume-ats/internal/ats/model"
)

// Analyzer scores resumes with a fixed scoring model.
type Analyzer struct {
	model *model.Model
}

// NewAnalyzer returns an Analyzer for m, or for the embedded model when m is nil.
func NewAnalyzer(m *model.Model) *Analyzer {
	if m == nil {
		m = model.Default()
	}
	return &Analyzer{model: m}
}

// Model returns the scoring model in use.
func (a *Analyzer) Model() *model.Model {
	return a.model
}

// Analyze scores resumeText. A blank jobDescriptionText skips job matching.
func (a *Analyzer) Analyze(resumeText, jobDescriptionText string) AnalysisReport {
	text := normalizeNewlines(resumeText)
	sections := a.Sections(text)
	results := sections.Results()
	score := finalScore(results)
	gaps := a.contentGaps(text, sections)
	keywords := a.keywordReport(text)

	var jobKeywords []KeywordMatch
	if jd := normalizeNewlines(jobDescriptionText); strings.TrimSpace(jd) != "" {
		jobKeywords = a.matchJobDescription(text, jd)
	}

	all := a.improvements(sections, gaps, jobKeywords)
	improvements := all
	if len(improvements) > maxImprovements {
		improvements = improvements[:maxImprovements]
	}

	misspelled := a.model.Matcher().MisspellingsIn(text)
	if misspelled == nil {
		misspelled = []string{}
	}

	return AnalysisReport{
		Score:                  score,
		OverallAssessment:      overallAssessment(score),
		Summary:                a.summaryText(text, sections),
		SectionScores:          results,
		Breakdown:              breakdown(results),
		Strengths:              a.strengths(sections, keywords),
		Improvements:           improvements,
		Keywords:               keywords,
		JobDescriptionKeywords: jobKeywords,
		JobMatch:               jobMatchSummary(jobKeywords),
		FormatAnalysis:         formatAnalysis(sections),
		ContentPresent:         gaps.Present,
		ContentAbsent:          gaps.Absent,
		Roadmap:                a.roadmap(score, all),
		Diagnostics:            a.diagnostics(text, score, sections, keywords),
		Suggestions:            a.suggestions(score, all),
		Spelling:               SpellingCheck{Misspelled: misspelled, Clean: len(misspelled) == 0},
		ModelVersion:           a.model.Version,
	}
}

// Sections runs the seven section extractors.
func (a *Analyzer) Sections(text string) Sections {
	return Sections{
		Contact:      a.analyzeContact(text),
		Summary:      a.analyzeSummary(text),
		Experience:   a.analyzeExperience(text),
		Education:    a.analyzeEducation(text),
		Skills:       a.analyzeSkills(text),
		Achievements: a.analyzeAchievements(text),
		Formatting:   a.analyzeFormatting(text),
	}
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
