package application

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
	"go.uber.org/zap"
)

const configFileMode = 0o600

const (
	overwritePrompt = "Do you want to overwrite it? (y/N): "
	apiKeyPrompt    = "Enter your OpenAI API key (input hidden): "
	apiKeysURL      = "https://platform.openai.com/api-keys"
)

type ConfigWriter struct {
	fs       ports.FileSystem
	prompter ports.Prompter
	reporter ports.Reporter
	logger   *zap.Logger
	path     string
}

func NewConfigWriter(fs ports.FileSystem, prompter ports.Prompter, reporter ports.Reporter, logger *zap.Logger, path string) *ConfigWriter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ConfigWriter{
		fs:       fs,
		prompter: prompter,
		reporter: reporter,
		logger:   logger,
		path:     path,
	}
}

// Write creates the configuration file, or replaces it after the operator
// confirms. Declining leaves the existing file untouched and is not an error.
func (w *ConfigWriter) Write(ctx context.Context) (domain.ConfigOutcome, error) {
	w.reporter.Step("Setting up environment configuration...")
	name := filepath.Base(w.path)

	exists, err := w.fs.Exists(w.path)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", name, err)
	}

	if exists {
		w.reporter.Info(fmt.Sprintf("%s file already exists", name))
		overwrite, err := w.prompter.Confirm(ctx, overwritePrompt)
		if err != nil {
			return "", w.promptError(ctx, "confirm overwrite", err)
		}
		if !overwrite {
			w.reporter.Info(fmt.Sprintf("Keeping existing %s file", name))
			return domain.ConfigKept, nil
		}
	}

	apiKey, err := w.readAPIKey(ctx)
	if err != nil {
		return "", err
	}

	file := domain.NewConfigFile(apiKey)
	if err := w.fs.WriteFileAtomic(w.path, file.Render(), configFileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	// Entries stringify with secrets masked.
	w.logger.Debug("config written", zap.String("path", w.path), zap.Stringers("entries", file.Entries()))

	w.reporter.Success(fmt.Sprintf("Environment configuration created (%s)", name))
	return domain.ConfigWritten, nil
}

func (w *ConfigWriter) readAPIKey(ctx context.Context) (string, error) {
	w.reporter.Step("OpenAI API Key Configuration")
	w.reporter.Info("You need an OpenAI API key to use this system.")
	w.reporter.Info("Get one at: " + apiKeysURL)

	apiKey, err := w.prompter.ReadSecret(ctx, apiKeyPrompt)
	if err != nil {
		return "", w.promptError(ctx, "read api key", err)
	}
	apiKey = strings.TrimSpace(apiKey)

	switch {
	case apiKey == "":
		w.reporter.Warn("No API key provided. You can set it later.")
		return domain.APIKeyPlaceholder, nil
	case !strings.HasPrefix(apiKey, domain.APIKeyPrefix):
		w.reporter.Warn(fmt.Sprintf("Warning: API key should start with '%s'", domain.APIKeyPrefix))
	}

	return apiKey, nil
}

func (w *ConfigWriter) promptError(ctx context.Context, op string, err error) error {
	if intErr := interruption(ctx, err); intErr != nil {
		return fmt.Errorf("%s: %w", op, intErr)
	}
	return fmt.Errorf("%s: %w", op, err)
}
