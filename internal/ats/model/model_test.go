package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModelLoads(t *testing.T) {
	m := Default()
	require.NotNil(t, m)
	require.NotNil(t, m.Matcher())
	assert.NotEmpty(t, m.Version)
	assert.Len(t, m.ActionVerbs, 20)
	assert.GreaterOrEqual(t, len(m.Keywords.All()), 20)
	assert.Len(t, m.JobSkillPatterns, 12)
	assert.Len(t, m.JobHeadings, 9)
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	m := Default()
	total := 0.0
	for _, key := range SectionKeys {
		w := m.Weight(key)
		assert.Greater(t, w, 0.0, key)
		assert.LessOrEqual(t, w, 1.0, key)
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, 0.30, m.Weight(SectionExperience), 1e-9)
	assert.InDelta(t, 0.05, m.Weight(SectionContact), 1e-9)
}

func TestLoadRejectsDriftingWeights(t *testing.T) {
	data := strings.Replace(string(embeddedModel), "experience: 0.30", "experience: 0.35", 1)
	_, err := Load([]byte(data))
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), "total 1.00")
}

func TestLoadRejectsMissingSectionWeight(t *testing.T) {
	data := strings.Replace(string(embeddedModel), "  formatting: 0.10\n", "", 1)
	_, err := Load([]byte(data))
	require.ErrorIs(t, err, ErrInvalidModel)
}

func TestLoadRejectsBadRegex(t *testing.T) {
	data := strings.Replace(string(embeddedModel), `bullet: '[•*-]'`, `bullet: '[•*-'`, 1)
	_, err := Load([]byte(data))
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), "bullet")
}

func TestLoadRejectsMissingPattern(t *testing.T) {
	data := strings.Replace(string(embeddedModel), "  gpa: ", "  gpaOld: ", 1)
	_, err := Load([]byte(data))
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), `"gpa"`)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load([]byte("weights: [1, 2"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	data := strings.Replace(string(embeddedModel), `version: "2025.10-1"`, `version: "custom-1"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-1", m.Version)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestImprovementFor(t *testing.T) {
	m := Default()

	copyText, impact := m.ImprovementFor("Add Professional Summary")
	assert.Equal(t, 8, impact)
	assert.NotEmpty(t, copyText.Description)
	assert.NotEmpty(t, copyText.WhatToAdd)

	_, impact = m.ImprovementFor("Add Missing Job Requirements (3)")
	assert.Equal(t, DefaultImpact, impact)

	_, impact = m.ImprovementFor("Add Certifications Section")
	assert.Equal(t, DefaultImpact, impact)
}

func TestIsStopWord(t *testing.T) {
	m := Default()
	assert.True(t, m.IsStopWord("and"))
	assert.True(t, m.IsStopWord("Experience"))
	assert.True(t, m.IsStopWord("no"))
	assert.False(t, m.IsStopWord("kubernetes"))
}
