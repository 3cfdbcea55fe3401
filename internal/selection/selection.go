// Package selection resolves a line of user input against a numbered list
// of candidates and a table of named actions.
//
// Input is matched in a fixed order:
//
//  1. empty line: the first candidate, or Acknowledged when there is no list
//  2. a number from 1 to len(candidates): that candidate
//  3. an action trigger: the action's result
//  4. "s" or "S": Skipped
//  5. "q" or "Q": the session is terminated
//
// Anything else re-prompts with InvalidMessage as the prompt message.
package selection

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/evgfitil/ucli/internal/prompt"
	"github.com/evgfitil/ucli/internal/render"
)

const (
	// DefaultMessage is the prompt shown when none is configured.
	DefaultMessage = "Select an option"
	// InvalidMessage replaces the prompt message after an invalid entry.
	InvalidMessage = "Invalid selection. Try again"
	// QuitMessage is printed when the user quits from a menu.
	QuitMessage = "Interrupted by user"
	// QuitCode is the exit status requested when the user quits.
	QuitCode = 1

	defaultTakeLimit = 5
)

// Kind tells which branch produced an Outcome.
type Kind int

const (
	// Chosen means a candidate was selected; Value and Index are set.
	Chosen Kind = iota + 1
	// Invoked means an action ran; Trigger and Result are set.
	Invoked
	// Skipped means the user declined to choose.
	Skipped
	// Acknowledged means there was no candidate list and the user pressed RETURN.
	Acknowledged
)

func (k Kind) String() string {
	switch k {
	case Chosen:
		return "chosen"
	case Invoked:
		return "invoked"
	case Skipped:
		return "skipped"
	case Acknowledged:
		return "acknowledged"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolution.
type Outcome[T any] struct {
	Kind    Kind
	Value   T
	Index   int // 1-based position of Value
	Trigger string
	Result  any
}

// Terminator ends the session when the user quits.
type Terminator interface {
	Terminate(message string, code int) error
}

// Resolver reads selections. It is safe to reuse across calls but not
// from multiple goroutines.
type Resolver struct {
	in      prompt.Reader
	out     *render.Renderer
	session Terminator
	message string
	log     zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDefaultMessage changes the message used when a call does not pass
// WithMessage.
func WithDefaultMessage(message string) ResolverOption {
	return func(r *Resolver) { r.message = message }
}

// WithLogger sets the resolver's logger.
func WithLogger(log zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a Resolver. session is invoked on quit.
func NewResolver(in prompt.Reader, out *render.Renderer, session Terminator, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		in:      in,
		out:     out,
		session: session,
		message: DefaultMessage,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type call struct {
	message string
}

// Option configures a single Resolve call.
type Option func(*call)

// WithMessage sets the prompt message for one call.
func WithMessage(message string) Option {
	return func(c *call) { c.message = message }
}

// Resolve prompts until the input resolves to an Outcome.
//
// A nil candidates slice means there is no list to choose from; an empty
// line then yields Acknowledged. An empty but non-nil slice has no default,
// so an empty line is an invalid selection.
//
// Errors from actions and from reading input are returned wrapped. When the
// user quits, the session's Terminate result is returned; with a real exit
// function that point is never reached.
func Resolve[T any](r *Resolver, candidates []T, actions Actions, opts ...Option) (Outcome[T], error) {
	c := call{message: r.message}
	for _, opt := range opts {
		opt(&c)
	}

	message := c.message
	for {
		line, err := r.in.ReadLine(r.out.Prompt(message+": "), "")
		if err != nil {
			return Outcome[T]{}, fmt.Errorf("reading selection: %w", err)
		}

		if line == "" {
			if candidates == nil {
				r.log.Debug().Msg("no candidates, selection acknowledged")
				return Outcome[T]{Kind: Acknowledged}, nil
			}
			if len(candidates) > 0 {
				r.log.Debug().Msg("empty input, default candidate chosen")
				return Outcome[T]{Kind: Chosen, Value: candidates[0], Index: 1}, nil
			}
		} else if idx, ok := index(line, len(candidates)); ok {
			r.log.Debug().Int("index", idx).Msg("candidate chosen")
			return Outcome[T]{Kind: Chosen, Value: candidates[idx-1], Index: idx}, nil
		} else if action, ok := actions[line]; ok {
			r.log.Debug().Str("trigger", line).Msg("invoking action")
			result, err := action.Invoke()
			if err != nil {
				return Outcome[T]{}, fmt.Errorf("action %q: %w", line, err)
			}
			return Outcome[T]{Kind: Invoked, Trigger: line, Result: result}, nil
		} else if line == "s" || line == "S" {
			r.log.Debug().Msg("selection skipped")
			return Outcome[T]{Kind: Skipped}, nil
		} else if line == "q" || line == "Q" {
			r.log.Debug().Msg("quit requested")
			return Outcome[T]{}, r.session.Terminate(QuitMessage, QuitCode)
		}

		r.log.Debug().Str("input", line).Msg("invalid selection")
		message = InvalidMessage
	}
}

// index parses line as a 1-based position into a list of n items. Only
// ASCII digits are accepted and out-of-range values are rejected.
func index(line string, n int) (int, bool) {
	for _, ch := range line {
		if ch < '0' || ch > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(line)
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}

// Take collects at most limit values from seq. A limit of zero or less
// means 5.
func Take[T any](seq iter.Seq[T], limit int) []T {
	if limit <= 0 {
		limit = defaultTakeLimit
	}
	out := make([]T, 0, limit)
	for v := range seq {
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
