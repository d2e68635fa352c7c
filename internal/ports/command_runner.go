package ports

import "context"

type CommandResult struct {
	Output   string
	ExitCode int
}

// CommandRunner runs an external process to completion. A non-nil error means
// the command did not succeed; Output still carries whatever it printed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)
}
