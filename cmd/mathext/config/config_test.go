// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathext/analyzer"
	"github.com/katalvlaran/mathext/cmd/mathext/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mathext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, analyzer.DefaultTolerance, cfg.Analyzer.Tolerance)
	assert.Equal(t, uint64(100), cfg.Sequence.Count)

	d, err := cfg.Analyzer.ParseDomain()
	require.NoError(t, err)
	assert.Equal(t, "(-Inf, +Inf)", d.String())
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
analyzer:
  domain: "Z[0, 50]"
  tolerance: 1e-6
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Z[0, 50]", cfg.Analyzer.Domain)
	assert.Equal(t, 1e-6, cfg.Analyzer.Tolerance)
	assert.Equal(t, analyzer.DefaultMaxIterations, cfg.Analyzer.MaxIterations, "untouched keys keep defaults")
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"bad domain":    "analyzer:\n  domain: \"[5, 1]\"\n",
		"zero tol":      "analyzer:\n  tolerance: 0\n",
		"bad level":     "log:\n  level: loud\n",
		"bad format":    "log:\n  format: xml\n",
		"zero count":    "sequence:\n  count: 0\n",
		"negative lim":  "sampler:\n  limit: -1\n",
		"zero iterates": "analyzer:\n  max_iterations: 0\n",
		"inf window":    "analyzer:\n  window: .inf\n",
		"inf tol":       "analyzer:\n  tolerance: .inf\n",
		"inf quantum":   "analyzer:\n  quantum: .inf\n",
		"nan quantum":   "analyzer:\n  quantum: .nan\n",
		"inf sampling":  "sampler:\n  quantum: .inf\n",
	}
	for name, body := range cases {
		_, err := config.Load(writeConfig(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "analyzer: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestAnalyzerOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Analyzer.Quantum = 0.5
	domain, err := cfg.Analyzer.ParseDomain()
	require.NoError(t, err)

	a, err := analyzer.New(func(x float64) float64 { return x - 1.5 }, cfg.Analyzer.Options(domain)...)
	require.NoError(t, err)
	roots, err := a.ZeroSet()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, roots)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	for level, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		assert.Equal(t, want, config.LogConfig{Level: level}.SlogLevel(), level)
	}
}
