package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New("warn", buf)
	require.NoError(t, err)

	logger.Debug("command succeeded", zap.String("command", "python3 --version"))
	logger.Warn("command timed out", zap.String("command", "python3 -m pip install jupyter>=1.0.0 -q"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "command succeeded")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "command timed out")
	assert.Contains(t, out, "run_id")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse log level")
}
