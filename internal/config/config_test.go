package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GPIRS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Conversion.UseHeaderDate)
	assert.Empty(t, cfg.Conversion.OverrideDate)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GPIRS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GPIRS_SERVER_PORT", "9090")
	t.Setenv("GPIRS_LOGGING_LEVEL", "debug")
	t.Setenv("GPIRS_CONVERSION_USE_HEADER_DATE", "false")
	t.Setenv("GPIRS_CONVERSION_OVERRIDE_DATE", "2024-03-05")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Conversion.UseHeaderDate)
	assert.Equal(t, "2024-03-05", cfg.Conversion.OverrideDate)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	yaml := "conversion:\n  override_date: \"2025-01-01\"\n"
	require.NoError(t, os.WriteFile(configFile, []byte(yaml), 0644))

	t.Setenv("GPIRS_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", cfg.Conversion.OverrideDate)
}

func TestLoadRejectsBadOverrideDate(t *testing.T) {
	t.Setenv("GPIRS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GPIRS_CONVERSION_OVERRIDE_DATE", "03/05/2024")

	_, err := Load()
	assert.Error(t, err)
}

func TestPathsLayout(t *testing.T) {
	p := pathsUnder(filepath.Join("/", "opt", "gpirs"))
	assert.Equal(t, filepath.Join("/", "opt", "gpirs", "data", "inbox"), p.InboxDir)
	assert.Equal(t, filepath.Join("/", "opt", "gpirs", "data", "reports"), p.ReportsDir)
	assert.Equal(t, filepath.Join("/", "opt", "gpirs", "logs", "app.log"), p.GetLogPath("app.log"))
}

func TestEnsureDirectories(t *testing.T) {
	p := pathsUnder(t.TempDir())
	require.NoError(t, p.EnsureDirectories())

	info, err := os.Stat(p.ReportsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
