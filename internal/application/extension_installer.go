package application

import (
	"context"
	"fmt"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
)

type ExtensionInstaller struct {
	runner    ports.CommandRunner
	reporter  ports.Reporter
	toolchain Toolchain
	extension domain.ExtensionSpec
}

func NewExtensionInstaller(runner ports.CommandRunner, reporter ports.Reporter, toolchain Toolchain, extension domain.ExtensionSpec) *ExtensionInstaller {
	return &ExtensionInstaller{
		runner:    runner,
		reporter:  reporter,
		toolchain: toolchain,
		extension: extension,
	}
}

// Install reports whether both steps succeeded. Failures are warned about as a
// single unit and never returned; the error is reserved for interruption.
func (e *ExtensionInstaller) Install(ctx context.Context) (bool, error) {
	e.reporter.Step("Setting up Jupyter environment...")
	if e.extension.Package == "" {
		e.reporter.Info("No notebook extensions configured")
		return true, nil
	}

	err := e.install(ctx)
	if intErr := interruption(ctx, err); intErr != nil {
		return false, fmt.Errorf("notebook extensions: %w", intErr)
	}
	if err == nil {
		return true, nil
	}

	e.reporter.Warn("Warning: Some Jupyter setup steps failed")
	return false, nil
}

func (e *ExtensionInstaller) install(ctx context.Context) error {
	err := e.reporter.Track(ctx, fmt.Sprintf("Installing %s...", e.extension.Package), func(ctx context.Context) error {
		name, args := e.toolchain.PipInstall(e.extension.Package)
		_, err := e.runner.Run(ctx, name, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("install %s: %w", e.extension.Package, err)
	}
	e.reporter.Success("Jupyter extensions installed")

	err = e.reporter.Track(ctx, "Enabling notebook widgets...", func(ctx context.Context) error {
		name, args := e.toolchain.RunModule(e.extension.ActivateModule, e.extension.ActivateArgs...)
		_, err := e.runner.Run(ctx, name, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("activate %s: %w", e.extension.ActivateModule, err)
	}
	e.reporter.Success("Jupyter widgets enabled")

	return nil
}
