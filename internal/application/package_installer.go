package application

import (
	"context"
	"fmt"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
)

type PackageInstaller struct {
	runner    ports.CommandRunner
	reporter  ports.Reporter
	toolchain Toolchain
	packages  []domain.PackageSpec
}

func NewPackageInstaller(runner ports.CommandRunner, reporter ports.Reporter, toolchain Toolchain, packages []domain.PackageSpec) *PackageInstaller {
	return &PackageInstaller{
		runner:    runner,
		reporter:  reporter,
		toolchain: toolchain,
		packages:  packages,
	}
}

// Install attempts every package in manifest order. A failed package is
// warned about and skipped; only an interruption stops the loop.
func (i *PackageInstaller) Install(ctx context.Context) ([]domain.InstallOutcome, error) {
	i.reporter.Step("Installing dependencies...")

	outcomes := make([]domain.InstallOutcome, 0, len(i.packages))
	for _, pkg := range i.packages {
		requirement := pkg.Requirement()
		err := i.reporter.Track(ctx, fmt.Sprintf("Installing %s...", requirement), func(ctx context.Context) error {
			name, args := i.toolchain.PipInstall(requirement)
			_, err := i.runner.Run(ctx, name, args...)
			return err
		})
		if intErr := interruption(ctx, err); intErr != nil {
			return outcomes, fmt.Errorf("install %s: %w", requirement, intErr)
		}
		if err != nil {
			i.reporter.Warn(fmt.Sprintf("Warning: Failed to install %s", requirement))
		}

		outcomes = append(outcomes, domain.InstallOutcome{Package: pkg, Succeeded: err == nil})
	}

	i.reporter.Success("Dependencies installation completed")
	if failed := domain.FailedOutcomes(outcomes); len(failed) > 0 {
		i.reporter.Info(fmt.Sprintf("%d of %d packages failed to install", len(failed), len(outcomes)))
	}

	return outcomes, nil
}
