package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/sentiment-setup/internal/domain"
)

// Toolchain builds the interpreter invocations used by the installers and the verifier.
type Toolchain struct {
	Python string
}

func (t Toolchain) PipInstall(requirement string) (string, []string) {
	return t.Python, []string{"-m", "pip", "install", requirement, "-q"}
}

func (t Toolchain) RunModule(module string, args ...string) (string, []string) {
	return t.Python, append([]string{"-m", module}, args...)
}

func (t Toolchain) Import(module string) (string, []string) {
	return t.Python, []string{"-c", "import " + module}
}

// interruption returns a non-nil error when err, or the state of ctx, means the
// operator stopped the run. Other failures yield nil so callers can warn and go on.
func interruption(ctx context.Context, err error) error {
	if errors.Is(err, domain.ErrInterrupted) {
		return err
	}
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		if err == nil {
			err = ctx.Err()
		}
		return fmt.Errorf("%w: %w", domain.ErrInterrupted, err)
	}

	return nil
}
