package ports

import "context"

type Prompter interface {
	// ReadSecret reads a line without echoing it back to the operator.
	ReadSecret(ctx context.Context, prompt string) (string, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}
