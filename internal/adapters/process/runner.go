package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/sentiment-setup/internal/ports"
	"go.uber.org/zap"
)

const maxErrorOutput = 512

var ErrTimeout = errors.New("command timed out")

type runFunc func(ctx context.Context, name string, args ...string) (output string, exitCode int, err error)

// Runner executes commands synchronously. Output is captured rather than
// streamed to the terminal.
type Runner struct {
	timeout time.Duration
	logger  *zap.Logger
	run     runFunc
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner returns a Runner that bounds each command by timeout; zero disables the bound.
func NewRunner(timeout time.Duration, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{timeout: timeout, logger: logger, run: runCommand}
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) (ports.CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.CommandResult{}, err
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	started := time.Now()
	output, exitCode, err := r.run(runCtx, name, args...)
	result := ports.CommandResult{Output: output, ExitCode: exitCode}

	fields := []zap.Field{
		zap.String("command", commandLine(name, args)),
		zap.Duration("duration", time.Since(started)),
		zap.Int("exit_code", exitCode),
	}

	switch {
	case err == nil:
		r.logger.Debug("command succeeded", fields...)
		return result, nil
	case ctx.Err() != nil:
		r.logger.Debug("command cancelled", fields...)
		return result, fmt.Errorf("run %s: %w", name, ctx.Err())
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		r.logger.Warn("command timed out", append(fields, zap.Duration("timeout", r.timeout))...)
		return result, fmt.Errorf("run %s: %w after %s", commandLine(name, args), ErrTimeout, r.timeout)
	default:
		r.logger.Debug("command failed", append(fields, zap.String("output", tail(output)), zap.Error(err))...)
		return result, formatError(name, args, err, output)
	}
}

func runCommand(ctx context.Context, name string, args ...string) (string, int, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", -1, fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err = cmd.Run()
	exitCode := 0
	if err != nil {
		exitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}

	return output.String(), exitCode, err
}

func formatError(name string, args []string, err error, output string) error {
	trimmed := tail(output)
	if trimmed == "" {
		return fmt.Errorf("run %s: %w", commandLine(name, args), err)
	}

	return fmt.Errorf("run %s: %w: %s", commandLine(name, args), err, trimmed)
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func tail(output string) string {
	trimmed := strings.TrimSpace(output)
	if len(trimmed) > maxErrorOutput {
		trimmed = "..." + trimmed[len(trimmed)-maxErrorOutput:]
	}
	return trimmed
}
