package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resume-ats/internal/ats"
)

// Formatter renders an analysis report in one output format
type Formatter interface {
	Format(report ats.AnalysisReport) (string, error)
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]Formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{formatters: make(map[string]Formatter)}

	registry.RegisterFormatter("json", &JSONFormatter{})
	registry.RegisterFormatter("text", &TextFormatter{})
	registry.RegisterFormatter("markdown", &MarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a formatter under a format name
func (fr *FormatterRegistry) RegisterFormatter(format string, formatter Formatter) {
	fr.formatters[strings.ToLower(format)] = formatter
}

// Format renders report using the named format
func (fr *FormatterRegistry) Format(report ats.AnalysisReport, format string) (string, error) {
	formatter, ok := fr.formatters[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return "", fmt.Errorf("no formatter found for format '%s'", format)
	}
	return formatter.Format(report)
}

// GetSupportedFormats returns all supported formats, sorted
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// JSONFormatter emits the report as indented JSON
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(report ats.AnalysisReport) (string, error) {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// TextFormatter handles plain text output for terminals
type TextFormatter struct{}

func (tf *TextFormatter) Format(report ats.AnalysisReport) (string, error) {
	var output strings.Builder

	output.WriteString("=== ATS ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", report.Score, report.OverallAssessment))
	output.WriteString(fmt.Sprintf("Model: %s\n\n", report.ModelVersion))
	output.WriteString(report.Summary)
	output.WriteString("\n\n")

	output.WriteString("=== SECTION SCORES ===\n")
	for _, s := range report.SectionScores {
		output.WriteString(fmt.Sprintf("%-14s %3d\n", s.Label, s.Score))
	}
	output.WriteString("\n")

	if d := report.Diagnostics; len(d.ParsingIssues.Checklist) > 0 {
		output.WriteString("=== ATS CHECKLIST ===\n")
		output.WriteString(fmt.Sprintf("Compatibility: %s | Sections complete: %d/%d | Length: %s\n",
			d.Compatibility, d.SectionCompletion.CompletedSections, d.SectionCompletion.TotalSections, d.ResumeLength.Status))
		for _, item := range d.ParsingIssues.Checklist {
			output.WriteString(fmt.Sprintf("- %s: %s\n", item.Check, item.Status))
		}
		output.WriteString("\n")
	}

	if report.JobMatch != nil {
		output.WriteString("=== JOB MATCH ===\n")
		output.WriteString(fmt.Sprintf("Match: %d%%\n", report.JobMatch.MatchPercentage))
		if len(report.JobMatch.Missing) > 0 {
			output.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(report.JobMatch.Missing, ", ")))
		}
		output.WriteString("\n")
	}

	if len(report.Strengths) > 0 {
		output.WriteString("=== STRENGTHS ===\n")
		for _, s := range report.Strengths {
			output.WriteString(fmt.Sprintf("- %s: %s\n", s.Title, s.Description))
		}
		output.WriteString("\n")
	}

	if len(report.Improvements) > 0 {
		output.WriteString("=== IMPROVEMENTS ===\n")
		for i, imp := range report.Improvements {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, imp.Priority, imp.Title))
			output.WriteString("   ")
			output.WriteString(imp.Description)
			output.WriteString("\n")
		}
		output.WriteString("\n")
	} else {
		output.WriteString("No improvements suggested.\n\n")
	}

	output.WriteString("=== ROADMAP ===\n")
	output.WriteString(report.Roadmap.Summary)
	output.WriteString("\n")
	for _, step := range report.Roadmap.Steps {
		output.WriteString(fmt.Sprintf("%d. %s (+%.2f -> %.2f)\n", step.Step, step.Title, step.ScoreIncrementPercentage, step.ProjectedScoreAfter))
	}

	return output.String(), nil
}

// MarkdownFormatter handles markdown output
type MarkdownFormatter struct{}

func (mf *MarkdownFormatter) Format(report ats.AnalysisReport) (string, error) {
	var output strings.Builder

	output.WriteString("# ATS Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", report.Score, report.OverallAssessment))
	output.WriteString(report.Summary)
	output.WriteString("\n\n")

	output.WriteString("## Section Scores\n\n")
	output.WriteString("| Section | Score |\n|---|---|\n")
	for _, s := range report.SectionScores {
		output.WriteString(fmt.Sprintf("| %s | %d |\n", s.Label, s.Score))
	}
	output.WriteString("\n")

	if d := report.Diagnostics; len(d.ParsingIssues.Checklist) > 0 {
		output.WriteString("## ATS Checklist\n\n")
		output.WriteString(fmt.Sprintf("**Compatibility:** %s\n\n", d.Compatibility))
		for _, item := range d.ParsingIssues.Checklist {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", item.Check, item.Status))
		}
		output.WriteString("\n")
	}

	if report.JobMatch != nil {
		output.WriteString("## Job Match\n\n")
		output.WriteString(fmt.Sprintf("**Match:** %d%%\n\n", report.JobMatch.MatchPercentage))
		for _, kw := range report.JobMatch.Missing {
			output.WriteString(fmt.Sprintf("- [ ] %s\n", kw))
		}
		for _, kw := range report.JobMatch.Matched {
			output.WriteString(fmt.Sprintf("- [x] %s\n", kw))
		}
		output.WriteString("\n")
	}

	if len(report.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, s := range report.Strengths {
			output.WriteString(fmt.Sprintf("- **%s:** %s\n", s.Title, s.Description))
		}
		output.WriteString("\n")
	}

	if len(report.Improvements) > 0 {
		output.WriteString("## Improvements\n\n")
		for i, imp := range report.Improvements {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, imp.Title))
			output.WriteString(fmt.Sprintf("**Priority:** %s | **Section:** %s\n\n", imp.Priority, imp.Section))
			output.WriteString(imp.Description)
			output.WriteString("\n\n")
			for _, item := range imp.WhatToAdd {
				output.WriteString(fmt.Sprintf("- %s\n", item))
			}
			if len(imp.WhatToAdd) > 0 {
				output.WriteString("\n")
			}
		}
	}

	if len(report.FormatAnalysis) > 0 {
		output.WriteString("## Format Analysis\n\n")
		for _, a := range report.FormatAnalysis {
			output.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", a.Aspect, a.Status, a.Message))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Roadmap\n\n")
	output.WriteString(report.Roadmap.Summary)
	output.WriteString("\n")

	return output.String(), nil
}
