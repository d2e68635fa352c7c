package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/sentiment-setup/internal/adapters/fs/local"
	manifesttoml "github.com/bnema/sentiment-setup/internal/adapters/manifest/toml"
	"github.com/bnema/sentiment-setup/internal/adapters/process"
	"github.com/bnema/sentiment-setup/internal/adapters/prompt/terminal"
	"github.com/bnema/sentiment-setup/internal/adapters/python"
	"github.com/bnema/sentiment-setup/internal/adapters/render/console"
	"github.com/bnema/sentiment-setup/internal/application"
	"github.com/bnema/sentiment-setup/internal/config"
	"github.com/bnema/sentiment-setup/internal/logging"
	"github.com/bnema/sentiment-setup/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type runnerFactory func(cfg config.Config, logger *zap.Logger) ports.CommandRunner

type app struct {
	orchestrator *application.Orchestrator
	logger       *zap.Logger
}

func defaultRunner(cfg config.Config, logger *zap.Logger) ports.CommandRunner {
	return process.NewRunner(cfg.CommandTimeout, logger)
}

func wireApp(cmd *cobra.Command, newRunner runnerFactory) (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), workDir)
	if err != nil {
		return nil, fmt.Errorf("load setup config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	manifest, err := manifesttoml.Default()
	if err != nil {
		return nil, fmt.Errorf("load package manifest: %w", err)
	}

	out := cmd.OutOrStdout()
	runner := newRunner(cfg, logger)

	orchestrator := application.NewOrchestrator(application.Dependencies{
		Probe:    python.NewProbe(cfg.Python, runner),
		Runner:   runner,
		Prompter: newPrompter(cmd.InOrStdin(), out),
		Files:    local.New(),
		Reporter: console.New(out, !cfg.Plain && isTerminal(out)),
		Logger:   logger,
	}, application.Options{
		Manifest:     manifest,
		Python:       cfg.Python,
		ConfigPath:   cfg.EnvFile,
		NotebookPath: cfg.Notebook,
	})

	logger.Debug("setup wired",
		zap.String("python", cfg.Python),
		zap.String("env_file", cfg.EnvFile),
		zap.String("notebook", cfg.Notebook),
		zap.Duration("command_timeout", cfg.CommandTimeout),
		zap.Int("packages", len(manifest.Packages)),
	)

	return &app{orchestrator: orchestrator, logger: logger}, nil
}

func newPrompter(in io.Reader, out io.Writer) ports.Prompter {
	if f, ok := in.(*os.File); ok {
		return terminal.New(f, out)
	}
	return terminal.NewScripted(in, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
