package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/sentiment-setup/internal/application"
	"github.com/spf13/cobra"
)

// setupFailedError carries a non-zero exit code after the pipeline has
// already told the operator what went wrong.
type setupFailedError struct {
	code int
	err  error
}

func (e *setupFailedError) Error() string {
	return fmt.Sprintf("setup failed (exit %d): %v", e.code, e.err)
}

func (e *setupFailedError) Unwrap() error {
	return e.err
}

func runSetup(cmd *cobra.Command, app *app) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := app.orchestrator.Run(ctx)
	if result.ExitCode == application.ExitSuccess {
		return nil
	}

	cmd.SilenceErrors = true
	return &setupFailedError{code: result.ExitCode, err: result.Err}
}
