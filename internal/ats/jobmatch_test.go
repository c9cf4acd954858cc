package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchJobDescriptionMarksEveryKeywordCritical(t *testing.T) {
	a := NewAnalyzer(nil)
	got := a.matchJobDescription("JavaScript developer", frontendPosting)

	assert.NotEmpty(t, got)
	for _, k := range got {
		assert.Equal(t, ImportanceCritical, k.Importance, k.Word)
		assert.Equal(t, strings.ToLower(k.Word), k.Word)
	}
}

func TestMatchJobDescriptionDropsStopWordTokens(t *testing.T) {
	a := NewAnalyzer(nil)
	got := a.matchJobDescription("", "Requirements:\n- experience with the team\n- Terraform\n- GraphQL")

	words := make([]string, 0, len(got))
	for _, k := range got {
		words = append(words, k.Word)
	}
	assert.Contains(t, words, "terraform")
	assert.Contains(t, words, "graphql")
	assert.NotContains(t, words, "experience with the team")
}

func TestMatchJobDescriptionDeduplicatesAndCaps(t *testing.T) {
	a := NewAnalyzer(nil)
	var b strings.Builder
	b.WriteString("Requirements:\n")
	for i := 0; i < 40; i++ {
		b.WriteString("- Skillname" + strings.Repeat("x", i%30) + "\n")
	}
	b.WriteString("- React\n- react\n- REACT\n")
	got := a.matchJobDescription("", b.String())

	assert.LessOrEqual(t, len(got), maxJobKeywords)
	seen := map[string]bool{}
	for _, k := range got {
		assert.False(t, seen[k.Word], "duplicate %q", k.Word)
		seen[k.Word] = true
	}
}

func TestMatchJobDescriptionWithoutHeadingUsesWholePosting(t *testing.T) {
	a := NewAnalyzer(nil)
	got := a.matchJobDescription("", "We use Python and PostgreSQL daily")

	words := map[string]bool{}
	for _, k := range got {
		words[k.Word] = true
	}
	assert.True(t, words["python"])
	assert.True(t, words["postgresql"])
}

func TestJobMatchSummary(t *testing.T) {
	assert.Nil(t, jobMatchSummary(nil))

	m := jobMatchSummary([]KeywordMatch{
		{Word: "go", Found: true},
		{Word: "grpc", Found: true},
		{Word: "kafka", Found: false},
	})
	assert.Equal(t, 67, m.MatchPercentage)
	assert.Equal(t, []string{"go", "grpc"}, m.Matched)
	assert.Equal(t, []string{"kafka"}, m.Missing)

	assert.Nil(t, jobMatchSummary([]KeywordMatch{}))
}

func TestAnalyzeOmitsJobMatchWhenPostingYieldsNoKeywords(t *testing.T) {
	report := NewAnalyzer(nil).Analyze(readFixture(t, "resume_strong.txt"), "We are looking for strong candidates")

	assert.Empty(t, report.JobDescriptionKeywords)
	assert.Nil(t, report.JobMatch)
	for _, imp := range report.Improvements {
		assert.NotEqual(t, jobMatchSection, imp.Section)
	}
}
