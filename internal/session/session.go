// Package session implements the controlled end of an interactive program:
// a closing message, an acknowledgement prompt, and the process exit.
package session

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/evgfitil/ucli/internal/prompt"
	"github.com/evgfitil/ucli/internal/render"
)

const (
	// DefaultCode is the exit status used when the user quits.
	DefaultCode = 1
	// ExitOptions is the acknowledgement line shown before exiting.
	ExitOptions = "Press [RETURN] to exit"

	separator = "-----"
)

// ErrTerminated is returned by Terminate when the exit function returns
// instead of ending the process.
var ErrTerminated = errors.New("session terminated")

// ExitError carries the status code of a terminated session.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("session terminated with code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return ErrTerminated
}

// ExitFunc ends the process with the given status code.
type ExitFunc func(code int)

// Controller runs the termination sequence.
type Controller struct {
	in   prompt.Reader
	out  *render.Renderer
	exit ExitFunc
	log  zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithExit replaces os.Exit.
func WithExit(fn ExitFunc) Option {
	return func(c *Controller) { c.exit = fn }
}

// WithLogger sets the controller's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a Controller that prints through out and waits for the
// acknowledgement on in.
func New(in prompt.Reader, out *render.Renderer, opts ...Option) *Controller {
	c := &Controller{
		in:   in,
		out:  out,
		exit: os.Exit,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Terminate prints message underlined with dashes, or a plain separator
// when message is empty, waits for RETURN and exits with code. It only
// returns when the exit function does, and then always with an *ExitError.
func (c *Controller) Terminate(message string, code int) error {
	if message == "" {
		c.out.Info(separator)
	} else {
		c.out.Info(message)
		c.out.Info(strings.Repeat("-", utf8.RuneCountInString(message)))
	}
	c.out.PrintOptions(ExitOptions)

	// The acknowledgement content is irrelevant, and so is a failed read.
	if _, err := c.in.ReadLine("", ""); err != nil {
		c.log.Debug().Err(err).Msg("acknowledgement read failed")
	}

	c.log.Debug().Int("code", code).Msg("terminating session")
	c.exit(code)
	return &ExitError{Code: code}
}

// Drop terminates without a message using DefaultCode.
func (c *Controller) Drop() error {
	return c.Terminate("", DefaultCode)
}
