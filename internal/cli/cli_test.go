package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats/internal/ats"
	"resume-ats/internal/shared/config"
)

func fixturePath(name string) string {
	return filepath.Join("..", "ats", "testdata", name)
}

func TestAnalyzeFileWritesJSON(t *testing.T) {
	var out bytes.Buffer
	err := analyzeFile(context.Background(), analyzeOptions{
		ResumeFile:   fixturePath("resume_strong.txt"),
		OutputFormat: "json",
	}, &out)
	require.NoError(t, err)

	var report ats.AnalysisReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 79, report.Score)
	assert.Nil(t, report.JobMatch)
}

func TestAnalyzeFileWithJobAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Requirements: React, TypeScript, Docker and Kubernetes"), 0o644))
	outPath := filepath.Join(dir, "report.md")

	var stdout bytes.Buffer
	err := analyzeFile(context.Background(), analyzeOptions{
		ResumeFile:   fixturePath("resume_strong.txt"),
		JobFile:      jobPath,
		OutputFile:   outPath,
		OutputFormat: "markdown",
	}, &stdout)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "# ATS Analysis")
	assert.Contains(t, string(written), "## Job Match")
}

func TestAnalyzeFileErrors(t *testing.T) {
	var out bytes.Buffer
	err := analyzeFile(context.Background(), analyzeOptions{
		ResumeFile:   filepath.Join(t.TempDir(), "missing.txt"),
		OutputFormat: "text",
	}, &out)
	assert.Error(t, err)

	err = analyzeFile(context.Background(), analyzeOptions{
		ResumeFile:   fixturePath("resume_strong.txt"),
		OutputFormat: "text",
		ModelPath:    filepath.Join(t.TempDir(), "missing.yaml"),
	}, &out)
	assert.ErrorContains(t, err, "read scoring model")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "resume-ats version "+Version)
	assert.Contains(t, out.String(), "Git commit: "+GitCommit)
}

func TestGetConfigFromContext(t *testing.T) {
	_, err := getConfigFromContext(context.Background())
	assert.Error(t, err)

	cfg := &config.Config{Port: "9000"}
	got, err := getConfigFromContext(context.WithValue(context.Background(), configKey, cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- listenAndServe(ctx, srv, "test") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
