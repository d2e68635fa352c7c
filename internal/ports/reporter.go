package ports

import "context"

// Reporter is the operator-facing output of the pipeline.
type Reporter interface {
	Banner()
	Step(title string)
	Info(message string)
	Success(message string)
	Warn(message string)
	Fail(message string)
	// Track runs fn while showing label as in-progress work.
	Track(ctx context.Context, label string, fn func(context.Context) error) error
	NextSteps(configPath, notebookPath string)
}
