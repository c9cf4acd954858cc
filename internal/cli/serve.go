package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"resume-ats/internal/shared/server"
	"resume-ats/internal/shared/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server that exposes the scoring engine.

Available endpoints (also under /api/v1):
- POST /api/analyze-ats: Score resume text, optionally against a job description
- POST /api/analyze-file: Score an uploaded PDF, DOCX or text resume
- POST /api/extract-text: Extract text from an uploaded document
- GET /api/health: Health check with the scoring model version
- GET /metrics: Prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from PORT)")
	serveCmd.Flags().String("model", "", "Scoring model YAML file (default from ATS_MODEL_PATH)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	if modelPath, _ := cmd.Flags().GetString("model"); modelPath != "" {
		cfg.ModelPath = modelPath
	}

	analyzer, err := newAnalyzer(cfg.ModelPath)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           server.NewRouter(*cfg, analyzer),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}
	return listenAndServe(cmd.Context(), srv, analyzer.Model().Version)
}

// listenAndServe runs srv until ctx is cancelled, then drains in-flight requests.
func listenAndServe(ctx context.Context, srv *http.Server, modelVersion string) error {
	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{
			"addr":          srv.Addr,
			"version":       Version,
			"model_version": modelVersion,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	telemetry.Info("server.shutdown", map[string]any{"addr": srv.Addr})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
