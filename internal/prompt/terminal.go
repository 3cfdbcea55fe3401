package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Terminal reads lines through readline on a terminal file descriptor.
type Terminal struct {
	rl    *readline.Instance
	log   zerolog.Logger
	owned *os.File
}

// NewTerminal creates a readline-backed reader on in, which must be a
// terminal. Raw mode and the screen width are taken from in's descriptor
// rather than the process's stdin so that /dev/tty works while stdin is piped.
func NewTerminal(in *os.File, out io.Writer, historyLimit int, log zerolog.Logger) (*Terminal, error) {
	fd := int(in.Fd())
	var saved *term.State

	rl, err := readline.NewEx(&readline.Config{
		Stdin:        in,
		Stdout:       out,
		Stderr:       out,
		HistoryLimit: historyLimit,
		FuncIsTerminal: func() bool {
			return term.IsTerminal(fd)
		},
		FuncMakeRaw: func() error {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return err
			}
			saved = state
			return nil
		},
		FuncExitRaw: func() error {
			if saved == nil {
				return nil
			}
			err := term.Restore(fd, saved)
			saved = nil
			return err
		},
		FuncGetWidth: func() int {
			w, _, err := term.GetSize(fd)
			if err != nil {
				return -1
			}
			return w
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}

	return &Terminal{rl: rl, log: log}, nil
}

// ReadLine shows prompt and reads a line. A non-empty prefill is inserted
// into the edit buffer before the user starts typing.
func (t *Terminal) ReadLine(prompt, prefill string) (string, error) {
	t.rl.SetPrompt(prompt)

	var (
		line string
		err  error
	)
	if prefill != "" {
		line, err = t.rl.ReadlineWithDefault(prefill)
	} else {
		line, err = t.rl.Readline()
	}
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return "", err
	}

	t.log.Debug().Str("line", line).Msg("line read")
	return line, nil
}

// Close releases readline and the /dev/tty handle if Open created one.
func (t *Terminal) Close() error {
	err := t.rl.Close()
	if t.owned != nil {
		if closeErr := t.owned.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
