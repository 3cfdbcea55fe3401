// Package field collects single free-text values from the user.
package field

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/evgfitil/ucli/internal/prompt"
	"github.com/evgfitil/ucli/internal/render"
)

// Collector prompts for field values.
type Collector struct {
	in  prompt.Reader
	out *render.Renderer
	log zerolog.Logger
}

// New creates a Collector reading from in and printing notices through out.
func New(in prompt.Reader, out *render.Renderer, log zerolog.Logger) *Collector {
	return &Collector{in: in, out: out, log: log}
}

type request struct {
	def      string
	prefill  string
	required bool
}

// Option configures a single Get call.
type Option func(*request)

// Default is returned when the user submits an empty line.
func Default(value string) Option {
	return func(r *request) { r.def = value }
}

// Prefill places editable text on the input line before the user types.
func Prefill(text string) Option {
	return func(r *request) { r.prefill = text }
}

// Required keeps prompting until a non-empty line is entered. It takes
// precedence over Default.
func Required() Option {
	return func(r *request) { r.required = true }
}

// Label formats the prompt for a field, e.g. "Module Path (default: app): ".
func Label(name, def string) string {
	label := render.Title(name)
	if def != "" {
		label += fmt.Sprintf(" (default: %s)", def)
	}
	return label + ": "
}

// Get prompts for name and returns the entered text, or the default when the
// line is empty. Required fields re-prompt on empty input without limit.
func (c *Collector) Get(name string, opts ...Option) (string, error) {
	var req request
	for _, opt := range opts {
		opt(&req)
	}

	label := c.out.Prompt(Label(name, req.def))
	for {
		value, err := c.in.ReadLine(label, req.prefill)
		if err != nil {
			return "", fmt.Errorf("reading field %q: %w", name, err)
		}

		if value == "" && req.required {
			c.log.Debug().Str("field", name).Msg("required field left empty")
			c.out.Info(fmt.Sprintf("It is necessary to enter the %s", name))
			continue
		}

		if value == "" {
			return req.def, nil
		}
		return value, nil
	}
}
