package ats

import (
	"fmt"
	"strings"

	"resume-ats/internal/ats/model"
)

func (a *Analyzer) analyzeSummary(text string) SummaryResult {
	mt := a.model.Matcher()
	weight := a.model.Weight(model.SectionSummary)

	window, ok := mt.Window("summaryHeading", text, a.model.Windows.Summary)
	if !ok {
		return SummaryResult{SectionResult: absent(SectionSummary, weight, "No professional summary/objective found")}
	}

	var t tally
	t.award("Presence", 15, 15, "Summary section found")

	words := wordCount(window)
	switch {
	case words >= 20 && words <= 50:
		t.award("Length", 25, 25, fmt.Sprintf("Optimal summary length (%d words)", words))
	case words < 10:
		t.award("Length", 0, 25, "Summary too brief - add more details")
	case words > 100:
		t.award("Length", 5, 25, "Summary too long - condense to 2-3 sentences")
	default:
		t.award("Length", 15, 25, fmt.Sprintf("Acceptable summary length (%d words)", words))
	}

	prefix := strings.ToLower(model.TakeRunes(text, a.model.Windows.KeywordPrefix))
	summaryKeywords := append(append([]string{}, a.model.Keywords.Tech...), a.model.Keywords.General...)
	found := len(containedKeywords(summaryKeywords, prefix))
	switch {
	case found >= 3:
		t.award("Keywords", 20, 20, fmt.Sprintf("Strong keyword density (%d keywords)", found))
	case found > 0:
		t.award("Keywords", 10, 20, fmt.Sprintf("Some keywords present (%d)", found))
	default:
		t.award("Keywords", 0, 20, "Add industry keywords near the top")
	}

	if len(mt.ActionVerbsIn(window)) > 0 {
		t.award("Action Verbs", 20, 20, "Uses action verbs")
	} else {
		t.award("Action Verbs", 0, 20, "Add action verbs to your summary")
	}

	if mt.Match("summaryMetric", window) {
		t.award("Quantified Results", 15, 15, "Includes quantified results")
	} else {
		t.award("Quantified Results", 0, 15, "Add a quantified result to your summary")
	}

	return SummaryResult{
		SectionResult: t.result(SectionSummary, true, weight),
		WordCount:     words,
	}
}
