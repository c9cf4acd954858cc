package ats

import (
	"fmt"
	"math"
)

const (
	optimalMinWords   = 300
	optimalMaxWords   = 800
	wellBulletedCount = 10
	fewBulletsCount   = 5
	goodVerbCount     = 5
	goodMetricCount   = 5
	defaultImpactText = "Improves ATS compatibility"
)

// Checklist statuses.
const (
	CheckVerified       = "Verified"
	CheckWarning        = "Warning"
	CheckNotice         = "Notice"
	CheckNeedsAttention = "Needs attention"
	CheckCouldImprove   = "Could improve"
)

var readabilityTips = []string{
	"Use standard fonts (Arial, Calibri, Times New Roman)",
	"Maintain consistent formatting throughout",
	"Use bullet points for easy parsing",
	"Avoid graphics, tables, and complex layouts",
	"Keep resume to 1-2 pages",
}

var parsingRecommendations = []string{
	"Avoid using headers and footers",
	"Do not use graphics or images",
	"Avoid using tables - use proper text formatting instead",
	"Use standard section headers (EXPERIENCE, EDUCATION, SKILLS)",
	"Keep formatting simple and consistent",
	"Use standard fonts only",
}

// ReadabilityCheck reports how easily a parser can read the layout.
type ReadabilityCheck struct {
	Score   int      `json:"score"`
	Status  string   `json:"status"`
	Details []string `json:"details"`
	Tips    []string `json:"tips"`
}

// KeywordAdvice is one keyword of the report with what to do about it.
type KeywordAdvice struct {
	Keyword        string     `json:"keyword"`
	Found          bool       `json:"found"`
	Importance     Importance `json:"importance"`
	Recommendation string     `json:"recommendation"`
}

// KeywordCoverage summarizes the resume keyword report.
type KeywordCoverage struct {
	Score    int             `json:"score"`
	Found    int             `json:"foundKeywords"`
	Total    int             `json:"totalKeywordsCovered"`
	Analysis []KeywordAdvice `json:"analysis"`
}

// SectionStatus grades one section for the completion breakdown.
type SectionStatus struct {
	Section          string   `json:"section"`
	Score            int      `json:"score"`
	Status           string   `json:"status"`
	WeightPercentage int      `json:"weightPercentage"`
	Feedback         []string `json:"feedback"`
}

// SectionCompletion counts the sections that exist and scored above zero.
type SectionCompletion struct {
	TotalSections        int             `json:"totalSections"`
	CompletedSections    int             `json:"completedSections"`
	IncompleteSections   []string        `json:"incompleteSections"`
	CompletionPercentage int             `json:"completionPercentage"`
	Breakdown            []SectionStatus `json:"sectionBreakdown"`
}

// ContactCheck lists the contact methods found and missing.
type ContactCheck struct {
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	HasEmail        bool     `json:"hasEmail"`
	HasPhone        bool     `json:"hasPhone"`
	HasLinkedIn     bool     `json:"hasLinkedIn"`
	Missing         []string `json:"missing"`
	Recommendations []string `json:"recommendations"`
}

// ContentQuality counts the signals recruiters skim for.
type ContentQuality struct {
	ActionVerbCount       int      `json:"actionVerbCount"`
	TotalMetrics          int      `json:"totalMetrics"`
	HasQuantifiedResults  bool     `json:"hasQuantifiedResults"`
	BulletPointUsage      int      `json:"bulletPointUsage"`
	ActionVerbAnalysis    string   `json:"actionVerbAnalysis"`
	MetricsAnalysis       string   `json:"metricsAnalysis"`
	FormattingAnalysis    string   `json:"formattingAnalysis"`
	SuggestedImprovements []string `json:"improvements"`
}

// LengthCheck grades the overall word count.
type LengthCheck struct {
	WordCount      int    `json:"wordCount"`
	LineCount      int    `json:"lineCount"`
	Status         string `json:"status"`
	Recommendation string `json:"recommendation"`
}

// ChecklistItem is one line of the parsing checklist.
type ChecklistItem struct {
	Check  string `json:"check"`
	Status string `json:"status"`
}

// ParsingIssues holds the static parsing advice and the checklist.
type ParsingIssues struct {
	Recommendations []string        `json:"recommendations"`
	Checklist       []ChecklistItem `json:"checklist"`
}

// ATSDiagnostics regroups the section results into parser-facing checks.
type ATSDiagnostics struct {
	Compatibility      string            `json:"atsCompatibility"`
	Readability        ReadabilityCheck  `json:"atsReadability"`
	KeywordMatching    KeywordCoverage   `json:"keywordMatching"`
	SectionCompletion  SectionCompletion `json:"sectionCompletion"`
	ContactInformation ContactCheck      `json:"contactInformation"`
	ContentQuality     ContentQuality    `json:"contentQuality"`
	ResumeLength       LengthCheck       `json:"resumeLength"`
	ParsingIssues      ParsingIssues     `json:"atsParsingIssues"`
}

func (a *Analyzer) diagnostics(text string, score int, s Sections, keywords []KeywordMatch) ATSDiagnostics {
	mt := a.model.Matcher()
	return ATSDiagnostics{
		Compatibility:      compatibility(score),
		Readability:        readability(s.Formatting),
		KeywordMatching:    keywordCoverage(keywords),
		SectionCompletion:  sectionCompletion(s.Results()),
		ContactInformation: contactCheck(s.Contact),
		ContentQuality: contentQuality(
			len(mt.ActionVerbsIn(text)),
			s.Achievements.MetricCount,
			s.Formatting.BulletCount,
		),
		ResumeLength: resumeLength(s.Formatting),
		ParsingIssues: ParsingIssues{
			Recommendations: parsingRecommendations,
			Checklist: []ChecklistItem{
				{"Simple text format (no graphics)", checkStatus(s.Formatting.WordCount > 0, CheckVerified, CheckNotice)},
				{"Standard section headers", checkStatus(mt.Match("standardHeading", text), CheckVerified, CheckWarning)},
				{"Contact info present and clear", checkStatus(s.Contact.Complete(), CheckVerified, CheckWarning)},
				{"Consistent formatting", checkStatus(s.Formatting.Score >= 70, CheckVerified, CheckNeedsAttention)},
				{"Proper use of bullet points", checkStatus(s.Formatting.BulletCount > fewBulletsCount, CheckVerified, CheckCouldImprove)},
			},
		},
	}
}

func compatibility(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Poor"
	}
}

func readability(f FormattingResult) ReadabilityCheck {
	return ReadabilityCheck{
		Score:   f.Score,
		Status:  checkStatus(f.Score >= 70, "Good", "Needs Improvement"),
		Details: f.Details,
		Tips:    readabilityTips,
	}
}

func keywordCoverage(keywords []KeywordMatch) KeywordCoverage {
	found := foundCount(keywords)
	out := KeywordCoverage{
		Score:    percentOf(found, len(keywords)),
		Found:    found,
		Total:    len(keywords),
		Analysis: make([]KeywordAdvice, 0, len(keywords)),
	}
	for _, k := range keywords {
		rec := "Present in resume"
		if !k.Found {
			rec = fmt.Sprintf("Add %q to your resume if relevant to your experience", k.Word)
		}
		out.Analysis = append(out.Analysis, KeywordAdvice{
			Keyword:        k.Word,
			Found:          k.Found,
			Importance:     k.Importance,
			Recommendation: rec,
		})
	}
	return out
}

func sectionCompletion(results []SectionResult) SectionCompletion {
	out := SectionCompletion{
		TotalSections:      len(results),
		IncompleteSections: []string{},
		Breakdown:          make([]SectionStatus, 0, len(results)),
	}
	for _, r := range results {
		if r.Exists && r.Score > 0 {
			out.CompletedSections++
		} else {
			out.IncompleteSections = append(out.IncompleteSections, r.Label)
		}
		out.Breakdown = append(out.Breakdown, SectionStatus{
			Section:          r.Label,
			Score:            r.Score,
			Status:           sectionStatus(r.Score),
			WeightPercentage: int(math.Round(r.Weight * 100)),
			Feedback:         r.Details,
		})
	}
	out.CompletionPercentage = percentOf(out.CompletedSections, out.TotalSections)
	return out
}

func sectionStatus(score int) string {
	switch {
	case score >= 70:
		return "Excellent"
	case score >= 50:
		return "Good"
	case score > 0:
		return "Needs Work"
	default:
		return "Missing"
	}
}

func contactCheck(c ContactResult) ContactCheck {
	out := ContactCheck{
		Score:       c.Score,
		Status:      checkStatus(c.Score >= 70, "Complete", "Incomplete"),
		HasEmail:    c.Email,
		HasPhone:    c.Phone,
		HasLinkedIn: c.LinkedIn,
		Missing:     []string{},
	}
	items := []struct {
		has            bool
		missing, found string
		add            string
	}{
		{c.Email, "Professional email", "✓ Email found", "✗ Add professional email address"},
		{c.Phone, "Phone number", "✓ Phone found", "✗ Add phone number"},
		{c.LinkedIn, "LinkedIn profile", "✓ LinkedIn found", "✗ Add LinkedIn profile URL"},
	}
	for _, it := range items {
		if it.has {
			out.Recommendations = append(out.Recommendations, it.found)
			continue
		}
		out.Missing = append(out.Missing, it.missing)
		out.Recommendations = append(out.Recommendations, it.add)
	}
	return out
}

func contentQuality(verbs, metrics, bullets int) ContentQuality {
	q := ContentQuality{
		ActionVerbCount:       verbs,
		TotalMetrics:          metrics,
		HasQuantifiedResults:  metrics > 0,
		BulletPointUsage:      bullets,
		ActionVerbAnalysis:    fmt.Sprintf("%d strong action verbs used - %s", verbs, checkStatus(verbs >= goodVerbCount, "Good", "Add more")),
		MetricsAnalysis:       fmt.Sprintf("%d quantified metrics - %s", metrics, checkStatus(metrics >= goodMetricCount, "Excellent", "Needs improvement")),
		FormattingAnalysis:    fmt.Sprintf("%d bullet points - %s", bullets, checkStatus(bullets > wellBulletedCount, "Well formatted", "Could improve")),
		SuggestedImprovements: []string{},
	}
	if verbs < goodVerbCount {
		q.SuggestedImprovements = append(q.SuggestedImprovements, "Use more action verbs")
	}
	if metrics == 0 {
		q.SuggestedImprovements = append(q.SuggestedImprovements, "Add quantified metrics")
	}
	if bullets < fewBulletsCount {
		q.SuggestedImprovements = append(q.SuggestedImprovements, "Use more bullet points")
	}
	return q
}

func resumeLength(f FormattingResult) LengthCheck {
	out := LengthCheck{WordCount: f.WordCount, LineCount: f.LineCount}
	switch {
	case f.WordCount < optimalMinWords:
		out.Status = "Too Short"
		out.Recommendation = "Add more details about your experience"
	case f.WordCount > optimalMaxWords:
		out.Status = "Too Long"
		out.Recommendation = "Consider condensing to fit on 2 pages"
	default:
		out.Status = "Optimal"
		out.Recommendation = "Good length for ATS"
	}
	return out
}

func checkStatus(ok bool, pass, fail string) string {
	if ok {
		return pass
	}
	return fail
}

func percentOf(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(total)))
}
