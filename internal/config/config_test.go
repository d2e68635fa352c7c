package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, filepath.Join(dir, ".env"), cfg.EnvFile)
	assert.Equal(t, filepath.Join(dir, "advanced_sentiment_analysis.ipynb"), cfg.Notebook)
	assert.Equal(t, 15*time.Minute, cfg.CommandTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Plain)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SENTIMENT_SETUP_PYTHON", "/opt/venv/bin/python")
	t.Setenv("SENTIMENT_SETUP_COMMAND_TIMEOUT", "90s")
	t.Setenv("SENTIMENT_SETUP_LOG_LEVEL", "DEBUG")
	t.Setenv("SENTIMENT_SETUP_PLAIN", "true")
	t.Setenv("SENTIMENT_SETUP_ENV_FILE", "/etc/sentiment/.env")

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/venv/bin/python", cfg.Python)
	assert.Equal(t, 90*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Plain)
	assert.Equal(t, "/etc/sentiment/.env", cfg.EnvFile)
}

func TestLoadReadsSetupFile(t *testing.T) {
	dir := t.TempDir()
	content := `python = "python3.11"
notebook = "notebooks/analysis.ipynb"
command_timeout = "0s"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.toml"), []byte(content), 0o644))

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "python3.11", cfg.Python)
	assert.Equal(t, filepath.Join(dir, "notebooks", "analysis.ipynb"), cfg.Notebook)
	assert.Zero(t, cfg.CommandTimeout)
}

func TestLoadRejectsInvalidSetupFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.toml"), []byte("python = [unterminated"), 0o644))

	_, err := Load(viper.New(), dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read setup config")
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("SENTIMENT_SETUP_COMMAND_TIMEOUT", "-1s")

	_, err := Load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "must not be negative")
}
