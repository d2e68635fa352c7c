package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/sentiment-setup/internal/domain"
	"github.com/bnema/sentiment-setup/internal/ports"
	"golang.org/x/term"
)

// Prompter reads operator answers from a terminal, or line by line from any
// reader when input is piped, so scripted runs behave the same way.
type Prompter struct {
	out    io.Writer
	reader *bufio.Reader
	tty    *ttyInput
}

type ttyInput struct {
	fd           int
	readPassword func(fd int) ([]byte, error)
	getState     func(fd int) (*term.State, error)
	restore      func(fd int, state *term.State) error
}

var _ ports.Prompter = (*Prompter)(nil)

// New prompts on out and reads from in, hiding secrets when in is a terminal.
func New(in *os.File, out io.Writer) *Prompter {
	p := NewScripted(in, out)
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		p.tty = &ttyInput{
			fd:           fd,
			readPassword: term.ReadPassword,
			getState:     term.GetState,
			restore:      term.Restore,
		}
	}

	return p
}

func NewScripted(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{out: out, reader: bufio.NewReader(in)}
}

func (p *Prompter) ReadSecret(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	if p.tty == nil {
		return p.readLine(ctx)
	}

	state, err := p.tty.getState(p.tty.fd)
	if err != nil {
		return "", fmt.Errorf("save terminal state: %w", err)
	}

	secret, err := readWithContext(ctx, func() (string, error) {
		raw, err := p.tty.readPassword(p.tty.fd)
		return string(raw), err
	})
	if ctx.Err() != nil {
		_ = p.tty.restore(p.tty.fd, state)
	}
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", p.readError(ctx, err)
	}

	return strings.TrimSpace(secret), nil
}

func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := p.readLine(ctx)
	if err != nil {
		return false, err
	}

	return domain.IsAffirmative(answer), nil
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	line, err := readWithContext(ctx, func() (string, error) {
		return p.reader.ReadString('\n')
	})
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", p.readError(ctx, err)
	}

	return strings.TrimSpace(line), nil
}

func (p *Prompter) readError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", domain.ErrInterrupted, ctx.Err())
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: unexpected end of input: %w", err)
	}
	return fmt.Errorf("read input: %w", err)
}

type readResult struct {
	value string
	err   error
}

// readWithContext returns when read completes or ctx is done. In the latter
// case the read is abandoned and its goroutine exits once the input unblocks.
func readWithContext(ctx context.Context, read func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := make(chan readResult, 1)
	go func() {
		value, err := read()
		done <- readResult{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-done:
		return result.value, result.err
	}
}
