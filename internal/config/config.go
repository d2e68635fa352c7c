package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "setup"
	configType = "toml"
	envPrefix  = "SENTIMENT_SETUP"

	pythonKey         = "python"
	envFileKey        = "env_file"
	notebookKey       = "notebook"
	commandTimeoutKey = "command_timeout"
	logLevelKey       = "log_level"
	plainKey          = "plain"
)

// Config holds the tool's own settings. They come from an optional setup.toml
// in the working directory and SENTIMENT_SETUP_* environment variables.
type Config struct {
	Python         string
	EnvFile        string
	Notebook       string
	CommandTimeout time.Duration
	LogLevel       string
	Plain          bool
}

func Load(v *viper.Viper, workDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(workDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(pythonKey, "python3")
	v.SetDefault(envFileKey, ".env")
	v.SetDefault(notebookKey, "advanced_sentiment_analysis.ipynb")
	v.SetDefault(commandTimeoutKey, 15*time.Minute)
	v.SetDefault(logLevelKey, "warn")
	v.SetDefault(plainKey, false)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read setup config: %w", err)
		}
	}

	cfg := Config{
		Python:         strings.TrimSpace(v.GetString(pythonKey)),
		EnvFile:        resolve(workDir, v.GetString(envFileKey)),
		Notebook:       resolve(workDir, v.GetString(notebookKey)),
		CommandTimeout: v.GetDuration(commandTimeoutKey),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString(logLevelKey))),
		Plain:          v.GetBool(plainKey),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Python == "" {
		return errors.New("python executable is empty")
	}
	if c.CommandTimeout < 0 {
		return fmt.Errorf("command timeout must not be negative, got %s", c.CommandTimeout)
	}

	return nil
}

func resolve(workDir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}
