package application

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
)

type InstallationVerifier struct {
	runner       ports.CommandRunner
	fs           ports.FileSystem
	reporter     ports.Reporter
	toolchain    Toolchain
	modules      []string
	configPath   string
	notebookPath string
}

func NewInstallationVerifier(runner ports.CommandRunner, fs ports.FileSystem, reporter ports.Reporter, toolchain Toolchain, modules []string, configPath, notebookPath string) *InstallationVerifier {
	return &InstallationVerifier{
		runner:       runner,
		fs:           fs,
		reporter:     reporter,
		toolchain:    toolchain,
		modules:      modules,
		configPath:   configPath,
		notebookPath: notebookPath,
	}
}

// Verify imports every module independently of what the installer reported.
// The first import failure fails verification; missing files only warn.
func (v *InstallationVerifier) Verify(ctx context.Context) (domain.VerificationReport, error) {
	v.reporter.Step("Verifying installation...")

	for _, module := range v.modules {
		var result ports.CommandResult
		err := v.reporter.Track(ctx, fmt.Sprintf("Importing %s...", module), func(ctx context.Context) error {
			name, args := v.toolchain.Import(module)
			var err error
			result, err = v.runner.Run(ctx, name, args...)
			return err
		})
		if intErr := interruption(ctx, err); intErr != nil {
			return domain.VerificationReport{}, fmt.Errorf("import %s: %w", module, intErr)
		}
		if err != nil {
			v.reporter.Fail("Import error: " + importFailure(module, result.Output))
			return domain.VerificationReport{FailedModule: module}, nil
		}
	}

	report := domain.VerificationReport{PackagesImportable: true}
	v.reporter.Success("All core packages imported successfully")

	var err error
	report.ConfigPresent, err = v.checkFile(v.configPath, "Environment configuration")
	if err != nil {
		return report, err
	}
	report.NotebookPresent, err = v.checkFile(v.notebookPath, "Main notebook")
	if err != nil {
		return report, err
	}

	return report, nil
}

func (v *InstallationVerifier) checkFile(path, label string) (bool, error) {
	present, err := v.fs.Exists(path)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", filepath.Base(path), err)
	}

	if present {
		v.reporter.Success(label + " found")
	} else {
		v.reporter.Warn(label + " not found")
	}

	return present, nil
}

// importFailure extracts the exception message from the interpreter's last
// output line, e.g. "ImportError: cannot import name 'x'" becomes
// "cannot import name 'x'".
func importFailure(module, output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return fmt.Sprintf("No module named '%s'", module)
	}

	if exception, message, ok := strings.Cut(last, ": "); ok && isExceptionName(exception) {
		return message
	}
	return last
}

func isExceptionName(name string) bool {
	if strings.ContainsAny(name, " \t'\"") {
		return false
	}
	name = name[strings.LastIndex(name, ".")+1:]
	return strings.HasSuffix(name, "Error") || strings.HasSuffix(name, "Exception")
}
