package ats

import "strings"

const (
	keywordReportSize = 20
	criticalKeywords  = 7
	importantKeywords = 7
)

// keywordReport checks the leading entries of the keyword tables against the
// resume. Rank decides importance.
func (a *Analyzer) keywordReport(text string) []KeywordMatch {
	all := a.model.Keywords.All()
	if len(all) > keywordReportSize {
		all = all[:keywordReportSize]
	}
	lower := strings.ToLower(text)
	out := make([]KeywordMatch, 0, len(all))
	for i, k := range all {
		out = append(out, KeywordMatch{
			Word:       k,
			Found:      strings.Contains(lower, strings.ToLower(k)),
			Importance: importanceForRank(i),
		})
	}
	return out
}

func importanceForRank(i int) Importance {
	switch {
	case i < criticalKeywords:
		return ImportanceCritical
	case i < criticalKeywords+importantKeywords:
		return ImportanceImportant
	default:
		return ImportanceNiceToHave
	}
}

func foundCount(keywords []KeywordMatch) int {
	n := 0
	for _, k := range keywords {
		if k.Found {
			n++
		}
	}
	return n
}
