package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
	"go.uber.org/zap"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type Dependencies struct {
	Probe    ports.RuntimeProbe
	Runner   ports.CommandRunner
	Prompter ports.Prompter
	Files    ports.FileSystem
	Reporter ports.Reporter
	Logger   *zap.Logger
}

type Options struct {
	Manifest     domain.Manifest
	Python       string
	ConfigPath   string
	NotebookPath string
}

type Result struct {
	State domain.State
	// Reached is the last pipeline state entered before the run ended.
	Reached  domain.State
	ExitCode int
	Runtime  domain.Version
	Outcomes []domain.InstallOutcome
	Config   domain.ConfigOutcome
	// ExtensionsInstalled is false when any extension step failed.
	ExtensionsInstalled bool
	Report              domain.VerificationReport
	Err                 error
}

type Orchestrator struct {
	gate         *EnvironmentGate
	packages     *PackageInstaller
	config       *ConfigWriter
	extensions   *ExtensionInstaller
	verifier     *InstallationVerifier
	reporter     ports.Reporter
	logger       *zap.Logger
	configPath   string
	notebookPath string
}

func NewOrchestrator(deps Dependencies, opts Options) *Orchestrator {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	toolchain := Toolchain{Python: opts.Python}

	return &Orchestrator{
		gate:         NewEnvironmentGate(deps.Probe, deps.Reporter, opts.Manifest.MinimumRuntime),
		packages:     NewPackageInstaller(deps.Runner, deps.Reporter, toolchain, opts.Manifest.Packages),
		config:       NewConfigWriter(deps.Files, deps.Prompter, deps.Reporter, logger, opts.ConfigPath),
		extensions:   NewExtensionInstaller(deps.Runner, deps.Reporter, toolchain, opts.Manifest.Extension),
		verifier:     NewInstallationVerifier(deps.Runner, deps.Files, deps.Reporter, toolchain, opts.Manifest.VerifyModules, opts.ConfigPath, opts.NotebookPath),
		reporter:     deps.Reporter,
		logger:       logger,
		configPath:   opts.ConfigPath,
		notebookPath: opts.NotebookPath,
	}
}

// Run executes every step in order and never terminates the process itself;
// callers turn Result.ExitCode into an exit status. Earlier steps are not
// rolled back when a later one fails.
func (o *Orchestrator) Run(ctx context.Context) (result Result) {
	result = Result{State: domain.StateStart, Reached: domain.StateStart}

	defer func() {
		if r := recover(); r != nil {
			result = o.abort(result, fmt.Errorf("panic: %v", r))
		}
		o.logger.Debug("setup finished",
			zap.String("state", string(result.State)),
			zap.String("reached", string(result.Reached)),
			zap.Int("exit_code", result.ExitCode),
		)
	}()

	o.reporter.Banner()

	var err error
	if result.Runtime, err = o.gate.Check(ctx); err != nil {
		return o.abort(result, err)
	}
	result = o.advance(result, domain.StateVersionChecked)

	if result.Outcomes, err = o.packages.Install(ctx); err != nil {
		return o.abort(result, err)
	}
	for _, outcome := range domain.FailedOutcomes(result.Outcomes) {
		o.logger.Info("package install failed", zap.String("package", outcome.Package.Requirement()))
	}
	result = o.advance(result, domain.StateDependenciesInstalled)

	if result.Config, err = o.config.Write(ctx); err != nil {
		return o.abort(result, err)
	}
	result = o.advance(result, domain.StateConfigWritten)

	if result.ExtensionsInstalled, err = o.extensions.Install(ctx); err != nil {
		return o.abort(result, err)
	}
	result = o.advance(result, domain.StateExtensionsAttempted)

	if result.Report, err = o.verifier.Verify(ctx); err != nil {
		return o.abort(result, err)
	}
	result = o.advance(result, domain.StateVerified)

	if !result.Report.Passed() {
		o.reporter.Fail("Setup completed with errors. Please check the output above.")
		result.State = domain.StateFailed
		result.ExitCode = ExitFailure
		result.Err = fmt.Errorf("%w: cannot import %s", domain.ErrVerificationFailed, result.Report.FailedModule)
		return result
	}

	o.reporter.NextSteps(o.configPath, o.notebookPath)
	result.State = domain.StateSuccess
	result.ExitCode = ExitSuccess
	return result
}

func (o *Orchestrator) advance(result Result, state domain.State) Result {
	o.logger.Debug("setup state", zap.String("from", string(result.Reached)), zap.String("to", string(state)))
	result.State = state
	result.Reached = state
	return result
}

func (o *Orchestrator) abort(result Result, err error) Result {
	switch {
	case errors.Is(err, domain.ErrInterrupted):
		o.reporter.Warn("Setup interrupted by user")
	case errors.Is(err, domain.ErrUnsupportedRuntime):
		// the gate already explained the required version
	default:
		o.reporter.Fail(fmt.Sprintf("Setup failed with error: %v", err))
	}

	o.logger.Debug("setup aborted", zap.String("reached", string(result.Reached)), zap.Error(err))
	result.State = domain.StateFailed
	result.ExitCode = ExitFailure
	result.Err = err
	return result
}
