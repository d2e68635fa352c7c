package python

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
	"github.com/bnema/sentiment-setup/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProbeParsesInterpreterOutput(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "python3", "-c", versionScript).
		Return(ports.CommandResult{Output: "3.11.6\n"}, nil)

	version, err := NewProbe("python3", runner).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Version{Major: 3, Minor: 11, Patch: 6}, version)
}

func TestProbeIgnoresStartupNoise(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "/opt/py/bin/python", "-c", versionScript).
		Return(ports.CommandResult{Output: "sitecustomize loaded\n3.8.18\n"}, nil)

	version, err := NewProbe("/opt/py/bin/python", runner).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Version{Major: 3, Minor: 8, Patch: 18}, version)
}

func TestProbeWrapsRunnerError(t *testing.T) {
	t.Parallel()

	runErr := errors.New("locate python3: executable file not found in $PATH")
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "python3", "-c", versionScript).
		Return(ports.CommandResult{ExitCode: -1}, runErr)

	_, err := NewProbe("python3", runner).Version(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, runErr)
	assert.ErrorContains(t, err, "query python3 version")
}

func TestProbeRejectsUnparseableOutput(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "python3", "-c", versionScript).
		Return(ports.CommandResult{Output: "\n"}, nil)

	_, err := NewProbe("python3", runner).Version(context.Background())
	assert.ErrorContains(t, err, "parse version")
}
