package application

import (
	"context"
	"fmt"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
)

type EnvironmentGate struct {
	probe    ports.RuntimeProbe
	reporter ports.Reporter
	minimum  domain.Version
}

func NewEnvironmentGate(probe ports.RuntimeProbe, reporter ports.Reporter, minimum domain.Version) *EnvironmentGate {
	return &EnvironmentGate{probe: probe, reporter: reporter, minimum: minimum}
}

func (g *EnvironmentGate) Check(ctx context.Context) (domain.Version, error) {
	version, err := g.probe.Version(ctx)
	if err != nil {
		if intErr := interruption(ctx, err); intErr != nil {
			return domain.Version{}, intErr
		}
		return domain.Version{}, fmt.Errorf("detect python version: %w", err)
	}

	if version.Less(g.minimum) {
		g.reporter.Fail(fmt.Sprintf("Python %s or higher is required", g.minimum.MajorMinor()))
		g.reporter.Info(fmt.Sprintf("Current version: %s", version))
		return version, fmt.Errorf("%w: python %s is below %s", domain.ErrUnsupportedRuntime, version, g.minimum.MajorMinor())
	}

	g.reporter.Success(fmt.Sprintf("Python version: %s", version))
	return version, nil
}
