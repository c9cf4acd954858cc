package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resume-ats/internal/ats"
	"resume-ats/internal/ats/model"
	"resume-ats/internal/shared/config"
)

type configKeyType struct{}

var configKey = configKeyType{}

var rootCmd = &cobra.Command{
	Use:   "resume-ats",
	Short: "Score resumes against ATS heuristics",
	Long: `resume-ats scores plain-text, PDF and DOCX resumes the way an applicant
tracking system would, optionally against a job description, and reports
section scores, keyword coverage and a prioritized improvement roadmap.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with cfg available to every subcommand.
func Execute(ctx context.Context, cfg *config.Config) error {
	ctx = context.WithValue(ctx, configKey, cfg)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return nil, fmt.Errorf("config not found in context")
}

// newAnalyzer loads the scoring model from modelPath, or the embedded default.
func newAnalyzer(modelPath string) (*ats.Analyzer, error) {
	if modelPath == "" {
		return ats.NewAnalyzer(nil), nil
	}
	m, err := model.LoadFile(modelPath)
	if err != nil {
		return nil, err
	}
	return ats.NewAnalyzer(m), nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
