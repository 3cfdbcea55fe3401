// Package prompt reads single lines of user input.
//
// Terminal is backed by readline and supports prefilled, editable input and
// an in-memory history. Editor is an inline bubbletea text input for editing
// a prefilled value. Plain reads from any io.Reader and is used when no
// terminal is available, and in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// DefaultHistoryLimit is the number of lines kept in the in-memory history.
const DefaultHistoryLimit = 100

// ErrInterrupted indicates the user pressed Ctrl+C while typing.
var ErrInterrupted = errors.New("input interrupted")

// Reader reads one line of input after displaying a prompt. A non-empty
// prefill is offered as editable text where the implementation supports it.
type Reader interface {
	ReadLine(prompt, prefill string) (string, error)
}

// ReadCloser is a Reader holding terminal resources.
type ReadCloser interface {
	Reader
	io.Closer
}

// Options configures Open.
type Options struct {
	// In is the input stream. Defaults to os.Stdin.
	In *os.File
	// Out receives prompts and echo. Defaults to os.Stderr.
	Out io.Writer
	// HistoryLimit bounds the in-memory history. Defaults to DefaultHistoryLimit.
	HistoryLimit int
	Logger       zerolog.Logger
}

// Open returns a Terminal when one is reachable, either on In or through
// /dev/tty when In is piped. Otherwise it falls back to Plain on In.
func Open(opts Options) (ReadCloser, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}

	if isTerminal(opts.In) {
		return NewTerminal(opts.In, opts.Out, opts.HistoryLimit, opts.Logger)
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err == nil {
		opts.Logger.Debug().Msg("stdin is piped, reading input from /dev/tty")
		t, termErr := NewTerminal(tty, opts.Out, opts.HistoryLimit, opts.Logger)
		if termErr == nil {
			t.owned = tty
			return t, nil
		}
		_ = tty.Close()
		opts.Logger.Debug().Err(termErr).Msg("readline unavailable on /dev/tty")
	}

	opts.Logger.Debug().Msg("no terminal available, using plain line reader")
	return NewPlain(opts.In, opts.Out, opts.Logger), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Plain reads newline-terminated input from an io.Reader. It cannot
// prefill input; the first prefill request is logged and then ignored.
type Plain struct {
	in     *bufio.Reader
	out    io.Writer
	log    zerolog.Logger
	warned bool
}

// NewPlain creates a Plain reader. Prompts are written to out.
func NewPlain(in io.Reader, out io.Writer, log zerolog.Logger) *Plain {
	return &Plain{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// ReadLine writes the prompt and returns the next line without its line
// ending. A final line without a trailing newline is returned before io.EOF.
func (p *Plain) ReadLine(prompt, prefill string) (string, error) {
	if prefill != "" && !p.warned {
		p.warned = true
		p.log.Warn().Msg("line editor cannot prefill input, ignoring prefill")
	}

	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

// Close is a no-op; Plain does not own its input.
func (p *Plain) Close() error {
	return nil
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}
