package cmd

import (
	"errors"

	"github.com/bnema/sentiment-setup/internal/application"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps an Execute error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return application.ExitSuccess
	}

	var setupErr *setupFailedError
	if errors.As(err, &setupErr) {
		return setupErr.code
	}

	return application.ExitFailure
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultRunner)
}

func newRootCmdWith(newRunner runnerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment-setup",
		Short: "Prepare this machine to run the sentiment analysis notebook",
		Long: "sentiment-setup checks the Python interpreter, installs the notebook's packages, " +
			"writes the .env configuration (asking for your OpenAI API key), enables notebook " +
			"extensions and verifies that everything imports.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd, newRunner)
			if err != nil {
				return err
			}
			defer func() { _ = app.logger.Sync() }()

			return runSetup(cmd, app)
		},
	}
}
