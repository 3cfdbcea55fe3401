// Package render prints colored prompts, notices and menus.
//
// Every Renderer is bound to one writer. Color support is detected on that
// writer by lipgloss, so output written to a pipe or a buffer is plain text.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var optionsRegex = regexp.MustCompile(`\[.*?\]`)

// Renderer writes styled text to a single output.
type Renderer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	theme    Theme
}

// New creates a Renderer writing to out with the given theme.
func New(out io.Writer, theme Theme) *Renderer {
	lr := lipgloss.NewRenderer(out)
	return &Renderer{
		out:      out,
		renderer: lr,
		theme:    theme.WithRenderer(lr),
	}
}

// SetColorProfile overrides the detected color profile. termenv.Ascii
// disables color entirely.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.renderer.SetColorProfile(p)
}

// Writer returns the output the renderer prints to.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

type headerConfig struct {
	color      string
	tokens     []string
	end        string
	blankFirst bool
}

// HeaderOption customizes a single Header call.
type HeaderOption func(*headerConfig)

// WithColor selects the color of the header text: "header", "info",
// "highlight" or any lipgloss color.
func WithColor(color string) HeaderOption {
	return func(c *headerConfig) { c.color = color }
}

// WithTokens appends uncolored tokens on the same line, separated by spaces.
func WithTokens(tokens ...string) HeaderOption {
	return func(c *headerConfig) { c.tokens = append(c.tokens, tokens...) }
}

// WithEnd replaces the line terminator.
func WithEnd(end string) HeaderOption {
	return func(c *headerConfig) { c.end = end }
}

// WithBlankLine emits an empty line before the header.
func WithBlankLine() HeaderOption {
	return func(c *headerConfig) { c.blankFirst = true }
}

// Header prints text in the header color followed by any trailing tokens
// and the line terminator.
func (r *Renderer) Header(text string, opts ...HeaderOption) {
	cfg := headerConfig{color: "header", end: "\n"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.blankFirst {
		fmt.Fprintln(r.out)
	}

	parts := append([]string{r.theme.StyleFor(cfg.color).Render(text)}, cfg.tokens...)
	fmt.Fprint(r.out, strings.Join(parts, " ")+cfg.end)
}

// Info prints text in the informational color. Options other than WithColor
// behave as in Header.
func (r *Renderer) Info(text string, opts ...HeaderOption) {
	r.Header(text, append(append([]HeaderOption{}, opts...), WithColor("info"))...)
}

// Highlight returns text in the highlight color.
func (r *Renderer) Highlight(text string) string {
	return r.theme.HighlightStyle().Render(text)
}

// Prompt returns text styled as an input prompt.
func (r *Renderer) Prompt(text string) string {
	return r.theme.HeaderStyle().Render(text)
}

// HighlightOptions highlights every bracketed token, e.g. "[RETURN]",
// leaving the surrounding text untouched.
func (r *Renderer) HighlightOptions(options string) string {
	return optionsRegex.ReplaceAllStringFunc(options, r.Highlight)
}

// PrintOptions prints an indented options line with its bracketed tokens
// highlighted.
func (r *Renderer) PrintOptions(options string) {
	fmt.Fprintln(r.out, " ", r.HighlightOptions(options))
}

// PrintCandidates prints a numbered menu. The first entry is the default and
// gets a highlighted marker.
func (r *Renderer) PrintCandidates(candidates []string, capitalize bool) {
	for i, candidate := range candidates {
		marker := fmt.Sprintf("[%d]", i+1)
		if i == 0 {
			marker = r.Highlight(marker)
		}
		if capitalize {
			candidate = Title(candidate)
		}
		fmt.Fprintf(r.out, "  %s %s\n", marker, candidate)
	}
}

// Title upper-cases the first letter of every word and lower-cases the rest.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
