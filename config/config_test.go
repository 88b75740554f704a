package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFiles_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("ROSTER_SEED", "")

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "gradebook", cfg.App.Name)
	assert.True(t, cfg.Roster.Seed)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.Equal(t, "text", cfg.Observability.LogFormat)
	assert.True(t, cfg.Features.IsEnabled(FeatureEventLog))
	assert.False(t, cfg.Features.IsEnabled(FeatureEventsAsync))
}

func TestLoadFiles_DotEnv(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ROSTER_SEED=false\nAPP_NAME=registry\n"), 0o600))

	// Already-set variables take precedence over the file.
	t.Setenv("APP_NAME", "from-env")
	t.Setenv("ROSTER_SEED", "")
	require.NoError(t, os.Unsetenv("ROSTER_SEED"))

	cfg, err := LoadFiles(path)
	require.NoError(t, err)
	assert.False(t, cfg.Roster.Seed)
	assert.Equal(t, "from-env", cfg.App.Name)
}

func TestLoadFiles_ProductionDefaultsToJSON(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := LoadFiles()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Name: "", Environment: "moon", ShutdownTimeout: 0},
		Observability: ObservabilityConfig{
			LogLevel:       "loud",
			LogFormat:      "xml",
			MetricsEnabled: true,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 6)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestFeatureFlags(t *testing.T) {
	t.Setenv("FEATURE_EVENTS_ASYNC", "true")
	t.Setenv("FEATURE_METRICS_SUMMARY", "nope")

	ff := LoadFeatureFlags()
	assert.True(t, ff.IsEnabled(FeatureEventsAsync))
	assert.True(t, ff.IsEnabled(FeatureMetricsSummary), "unparsable override keeps the default")
	assert.False(t, ff.IsEnabled("unknown.feature"))

	require.NoError(t, ff.DisableFeature(FeatureEventLog))
	assert.False(t, ff.IsEnabled(FeatureEventLog))

	var ffErr *FeatureFlagError
	assert.ErrorAs(t, ff.EnableFeature("unknown.feature"), &ffErr)

	assert.Equal(t, []string{FeatureEventLog, FeatureEventsAsync, FeatureMetricsSummary}, ff.Names())
	assert.Equal(t, "FEATURE_EVENTS_ASYNC", featureNameToEnvKey(FeatureEventsAsync))
}
