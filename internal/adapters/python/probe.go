package python

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
)

const versionScript = "import sys; print('%d.%d.%d' % sys.version_info[:3])"

// Probe reports the version of a Python interpreter by asking it directly.
type Probe struct {
	executable string
	runner     ports.CommandRunner
}

var _ ports.RuntimeProbe = (*Probe)(nil)

func NewProbe(executable string, runner ports.CommandRunner) *Probe {
	return &Probe{executable: executable, runner: runner}
}

func (p *Probe) Version(ctx context.Context) (domain.Version, error) {
	result, err := p.runner.Run(ctx, p.executable, "-c", versionScript)
	if err != nil {
		return domain.Version{}, fmt.Errorf("query %s version: %w", p.executable, err)
	}

	version, err := domain.ParseVersion(lastLine(result.Output))
	if err != nil {
		return domain.Version{}, fmt.Errorf("query %s version: %w", p.executable, err)
	}

	return version, nil
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
