package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterPlainOutput(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(out, false)

	r.Banner()
	r.Step("Installing dependencies...")
	r.Info("1 of 14 packages failed to install")
	r.Success("Dependencies installation completed")
	r.Warn("Warning: Failed to install seaborn>=0.11.0")
	r.Fail("Import error: No module named 'seaborn'")

	got := out.String()
	assert.Contains(t, got, strings.Repeat("=", ruleWidth))
	assert.Contains(t, got, "Advanced Sentiment Analysis System - Setup")
	assert.Contains(t, got, "Installing dependencies...")
	assert.Contains(t, got, "   1 of 14 packages failed to install\n")
	assert.Contains(t, got, "✅ Dependencies installation completed\n")
	assert.Contains(t, got, "⚠️  Warning: Failed to install seaborn>=0.11.0\n")
	assert.Contains(t, got, "❌ Import error: No module named 'seaborn'\n")
}

func TestReporterTrackPlainRunsWorkOnce(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(out, false)
	calls := 0
	wantErr := errors.New("exit status 1")

	err := r.Track(context.Background(), "Installing pandas>=1.5.0...", func(context.Context) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "   Installing pandas>=1.5.0...\n", out.String())
}

func TestReporterTrackRunsWorkWhenSpinnerCannotStart(t *testing.T) {
	out := &bytes.Buffer{}
	r := New(out, true)
	r.run = func(*tea.Program) (tea.Model, error) {
		return nil, errors.New("could not open a new TTY")
	}
	calls := 0
	wantErr := errors.New("exit status 1")

	err := r.Track(context.Background(), "Installing numpy>=1.21.0...", func(context.Context) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
	assert.Contains(t, out.String(), "   Installing numpy>=1.21.0...\n")
}

func TestReporterTrackInteractiveReturnsWorkError(t *testing.T) {
	r := New(io.Discard, true)
	wantErr := errors.New("exit status 1")

	err := r.Track(context.Background(), "Installing plotly>=5.0.0...", func(context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestReporterNextSteps(t *testing.T) {
	out := &bytes.Buffer{}
	New(out, false).NextSteps("/work/.env", "/work/advanced_sentiment_analysis.ipynb")

	got := out.String()
	assert.Contains(t, got, "Setup completed successfully!")
	assert.Contains(t, got, "jupyter notebook advanced_sentiment_analysis.ipynb")
	assert.Contains(t, got, "Keep your .env file secure and never commit it to git")
	assert.Contains(t, got, "CHANGELOG.md")
}

func TestSpinnerModelQuitsWhenWorkIsDone(t *testing.T) {
	m := newSpinnerModel("Installing numpy>=1.21.0...", lipgloss.NewStyle(), nil)
	assert.Contains(t, m.View(), "Installing numpy>=1.21.0...")

	next, cmd := m.Update(workDoneMsg{err: errors.New("boom")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	done, ok := next.(spinnerModel)
	require.True(t, ok)
	assert.True(t, done.done)
	assert.EqualError(t, done.err, "boom")
	assert.Empty(t, done.View())
}

func TestSpinnerModelAdvancesOnTick(t *testing.T) {
	m := newSpinnerModel("Importing pandas...", lipgloss.NewStyle(), nil)

	next, cmd := m.Update(m.spinner.Tick())
	assert.NotNil(t, cmd)
	_, ok := next.(spinnerModel)
	assert.True(t, ok)

	_, cmd = m.Update(tea.KeyMsg{})
	assert.Nil(t, cmd)
}
