package ats

// Section identifies one scored resume block.
type Section string

const (
	SectionContact      Section = "contact"
	SectionSummary      Section = "summary"
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionAchievements Section = "achievements"
	SectionFormatting   Section = "formatting"
)

// Label returns the display name used in reports and improvements.
func (s Section) Label() string {
	switch s {
	case SectionContact:
		return "Contact Information"
	case SectionSummary:
		return "Professional Summary"
	case SectionExperience:
		return "Work Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionAchievements:
		return "Achievements/Awards"
	case SectionFormatting:
		return "Formatting & Length"
	default:
		return string(s)
	}
}

// Importance ranks a keyword.
type Importance string

const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// Priority ranks an improvement.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ScoreComponent is one contribution to a score. Points never exceed MaxPoints.
type ScoreComponent struct {
	Name      string   `json:"name"`
	Points    float64  `json:"points"`
	MaxPoints float64  `json:"maxPoints"`
	Details   []string `json:"details,omitempty"`
}

// SectionResult is the outcome of one section extractor.
type SectionResult struct {
	Section    Section          `json:"section"`
	Label      string           `json:"label"`
	Score      int              `json:"score"`
	Exists     bool             `json:"exists"`
	Details    []string         `json:"details"`
	Weight     float64          `json:"weight"`
	Components []ScoreComponent `json:"components,omitempty"`
}

// ContactResult adds the contact methods that were found.
type ContactResult struct {
	SectionResult
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	LinkedIn bool `json:"linkedin"`
	Website  bool `json:"website"`
}

// Complete reports whether both email and phone are present.
func (c ContactResult) Complete() bool {
	return c.Email && c.Phone
}

// SummaryResult adds the measured summary length.
type SummaryResult struct {
	SectionResult
	WordCount int `json:"wordCount"`
}

// ExperienceResult adds job and verb counts from the experience window.
type ExperienceResult struct {
	SectionResult
	JobCount        int `json:"jobCount"`
	ActionVerbCount int `json:"actionVerbCount"`
	MetricCount     int `json:"metricCount"`
}

// EducationResult adds the degree types detected.
type EducationResult struct {
	SectionResult
	Degrees []string `json:"degrees"`
}

// SkillsResult adds the keywords found in the skills window.
type SkillsResult struct {
	SectionResult
	SkillCount int      `json:"skillCount"`
	Skills     []string `json:"skills"`
}

// AchievementsResult adds the whole-text metric count.
type AchievementsResult struct {
	SectionResult
	MetricCount int `json:"metricCount"`
}

// FormattingResult adds the layout measurements.
type FormattingResult struct {
	SectionResult
	WordCount   int `json:"wordCount"`
	LineCount   int `json:"lineCount"`
	BulletCount int `json:"bulletCount"`
}

// Sections holds the typed output of all seven extractors.
type Sections struct {
	Contact      ContactResult
	Summary      SummaryResult
	Experience   ExperienceResult
	Education    EducationResult
	Skills       SkillsResult
	Achievements AchievementsResult
	Formatting   FormattingResult
}

// Results returns the plain section results in report order.
func (s Sections) Results() []SectionResult {
	return []SectionResult{
		s.Contact.SectionResult,
		s.Summary.SectionResult,
		s.Experience.SectionResult,
		s.Education.SectionResult,
		s.Skills.SectionResult,
		s.Achievements.SectionResult,
		s.Formatting.SectionResult,
	}
}

// KeywordMatch records whether a keyword appears in the resume.
type KeywordMatch struct {
	Word       string     `json:"word"`
	Found      bool       `json:"found"`
	Importance Importance `json:"importance"`
}

// Improvement is a suggested change to the resume.
type Improvement struct {
	Section               string   `json:"section"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	Priority              Priority `json:"priority"`
	ScoreImpactPercentage float64  `json:"scoreImpactPercentage"`
	Impact                string   `json:"impact,omitempty"`
	WhatToAdd             []string `json:"whatToAdd,omitempty"`
}

// Strength is a positive finding.
type Strength struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FormatAspect is one line of the format analysis.
type FormatAspect struct {
	Aspect  string `json:"aspect"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JobMatch summarizes how many job-description keywords the resume covers.
type JobMatch struct {
	MatchPercentage int      `json:"matchPercentage"`
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
}

// RoadmapStep is one ordered step towards a perfect score.
type RoadmapStep struct {
	Step                     int      `json:"step"`
	Title                    string   `json:"title"`
	Section                  string   `json:"section"`
	Priority                 Priority `json:"priority"`
	Description              string   `json:"description"`
	CurrentScore             float64  `json:"currentScore"`
	ScoreIncrementPercentage float64  `json:"scoreIncrementPercentage"`
	ProjectedScoreAfter      float64  `json:"projectedScoreAfter"`
	WhatToAdd                []string `json:"whatToAdd"`
	EstimatedTimeInMinutes   int      `json:"estimatedTimeInMinutes"`
}

// Roadmap orders improvements by priority and expected gain.
type Roadmap struct {
	CurrentScore            int           `json:"currentScore"`
	TargetScore             int           `json:"targetScore"`
	ScoreGapToClose         int           `json:"scoreGapToClose"`
	TotalImprovementSteps   int           `json:"totalImprovementSteps"`
	Steps                   []RoadmapStep `json:"roadmapSteps"`
	EstimatedTimeToComplete int           `json:"estimatedTimeToComplete"`
	Summary                 string        `json:"summary"`
}

// SpellingCheck lists known misspellings found in the resume.
type SpellingCheck struct {
	Misspelled []string `json:"misspelled"`
	Clean      bool     `json:"clean"`
}

// AnalysisReport is the result of one Analyze call.
type AnalysisReport struct {
	Score                  int              `json:"score"`
	OverallAssessment      string           `json:"overallAssessment"`
	Summary                string           `json:"summary"`
	SectionScores          []SectionResult  `json:"sectionScores"`
	Breakdown              []ScoreComponent `json:"breakdown"`
	Strengths              []Strength       `json:"strengths"`
	Improvements           []Improvement    `json:"improvements"`
	Keywords               []KeywordMatch   `json:"keywords"`
	JobDescriptionKeywords []KeywordMatch   `json:"jobDescriptionKeywords,omitempty"`
	JobMatch               *JobMatch        `json:"jobMatch,omitempty"`
	FormatAnalysis         []FormatAspect   `json:"formatAnalysis"`
	ContentPresent         []string         `json:"contentPresent"`
	ContentAbsent          []string         `json:"contentAbsent"`
	Roadmap                Roadmap          `json:"roadmap"`
	Diagnostics            ATSDiagnostics   `json:"atsAnalysis"`
	Suggestions            Suggestions      `json:"suggestionsSection"`
	Spelling               SpellingCheck    `json:"spelling"`
	ModelVersion           string           `json:"modelVersion"`
}

// Section returns the result for s, if present.
func (r AnalysisReport) Section(s Section) (SectionResult, bool) {
	for _, res := range r.SectionScores {
		if res.Section == s {
			return res, true
		}
	}
	return SectionResult{}, false
}
