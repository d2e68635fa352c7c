package console

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type workDoneMsg struct {
	err error
}

type spinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	err     error
	done    bool
}

func newSpinnerModel(label string, style lipgloss.Style, work tea.Cmd) spinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(style),
	)

	return spinnerModel{
		spinner: s,
		label:   label,
		work:    work,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("   %s %s", m.spinner.View(), m.label)
}

type programRunner func(p *tea.Program) (tea.Model, error)

func runProgram(p *tea.Program) (tea.Model, error) {
	return p.Run()
}

// runSpinner blocks until fn returns, animating label on output meanwhile.
// fn runs exactly once, even when the program cannot start.
func runSpinner(ctx context.Context, run programRunner, output io.Writer, label string, style lipgloss.Style, fn func(context.Context) error) error {
	var claimed atomic.Bool
	done := make(chan error, 1)
	work := func() tea.Msg {
		if !claimed.CompareAndSwap(false, true) {
			return nil
		}
		err := fn(ctx)
		done <- err
		return workDoneMsg{err: err}
	}

	p := tea.NewProgram(
		newSpinnerModel(label, style, work),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := run(p)
	if err != nil {
		if claimed.CompareAndSwap(false, true) {
			return fn(ctx)
		}
		return <-done
	}

	result, ok := finalModel.(spinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
