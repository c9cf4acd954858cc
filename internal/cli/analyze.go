package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-ats/internal/ats"
	"resume-ats/internal/extract"
	"resume-ats/internal/formatters"
	"resume-ats/internal/shared/telemetry"
)

type analyzeOptions struct {
	ResumeFile   string
	JobFile      string
	OutputFile   string
	OutputFormat string
	ModelPath    string
}

var analyzeConfig analyzeOptions

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Score a resume file locally",
	Long: `Score a PDF, DOCX or plain-text resume without starting the server.

Pass --job with a job description file to add keyword matching against the
posting. Output is text by default; json and markdown are also available.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		registry := formatters.NewFormatterRegistry()
		for _, f := range registry.GetSupportedFormats() {
			if strings.EqualFold(f, analyzeConfig.OutputFormat) {
				return nil
			}
		}
		return fmt.Errorf("unsupported format %q (supported: %s)", analyzeConfig.OutputFormat, strings.Join(registry.GetSupportedFormats(), ", "))
	},
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.JobFile, "job", "j", "", "Job description file (PDF, DOCX or text)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "text", "Output format: json, text, or markdown")

	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatters.NewFormatterRegistry().GetSupportedFormats(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	// Keep stdout clean for the report.
	restore := telemetry.SetOutput(cmd.ErrOrStderr())
	defer restore()

	opts := analyzeConfig
	opts.ResumeFile = args[0]
	opts.ModelPath = cfg.ModelPath

	if err := analyzeFile(cmd.Context(), opts, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	return nil
}

func analyzeFile(ctx context.Context, opts analyzeOptions, stdout io.Writer) error {
	analyzer, err := newAnalyzer(opts.ModelPath)
	if err != nil {
		return err
	}

	resume, err := readDocument(ctx, opts.ResumeFile)
	if err != nil {
		return err
	}
	var job string
	if opts.JobFile != "" {
		if job, err = readDocument(ctx, opts.JobFile); err != nil {
			return err
		}
	}

	telemetry.Info("cli.analyze.start", map[string]any{
		"resume_file":   opts.ResumeFile,
		"resume_chars":  len(resume),
		"job_chars":     len(job),
		"output_format": opts.OutputFormat,
	})
	report := analyzer.Analyze(resume, job)

	out, err := formatters.NewFormatterRegistry().Format(report, opts.OutputFormat)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.OutputFile, out, stdout); err != nil {
		return err
	}
	logScore(report)
	return nil
}

func readDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := extract.Extract(ctx, data, "", filepath.Base(path))
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

func writeOutput(path, content string, stdout io.Writer) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func logScore(report ats.AnalysisReport) {
	fields := map[string]any{
		"score":         report.Score,
		"assessment":    report.OverallAssessment,
		"improvements":  len(report.Improvements),
		"model_version": report.ModelVersion,
	}
	if report.JobMatch != nil {
		fields["job_match_pct"] = report.JobMatch.MatchPercentage
	}
	telemetry.Info("cli.analyze.complete", fields)
}
