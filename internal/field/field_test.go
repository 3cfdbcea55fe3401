package field

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgfitil/ucli/internal/prompt"
	"github.com/evgfitil/ucli/internal/render"
)

// scriptedReader replays lines and records every prompt it was shown.
type scriptedReader struct {
	lines    []string
	prompts  []string
	prefills []string
}

func (s *scriptedReader) ReadLine(p, prefill string) (string, error) {
	s.prompts = append(s.prompts, p)
	s.prefills = append(s.prefills, prefill)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newCollector(in prompt.Reader, out *bytes.Buffer) *Collector {
	r := render.New(out, render.DefaultTheme())
	r.SetColorProfile(termenv.Ascii)
	return New(in, r, zerolog.Nop())
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		def  string
		want string
	}{
		{"name", "", "Name: "},
		{"name", "x", "Name (default: x): "},
		{"module path", "github.com/me/app", "Module Path (default: github.com/me/app): "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.name, tt.def))
	}
}

func TestGet_EmptyInputReturnsDefault(t *testing.T) {
	in := &scriptedReader{lines: []string{""}}
	c := newCollector(in, &bytes.Buffer{})

	got, err := c.Get("name", Default("x"))

	require.NoError(t, err)
	assert.Equal(t, "x", got)
	assert.Equal(t, []string{"Name (default: x): "}, in.prompts)
}

func TestGet_InputOverridesDefault(t *testing.T) {
	in := &scriptedReader{lines: []string{"alice"}}
	c := newCollector(in, &bytes.Buffer{})

	got, err := c.Get("name", Default("x"))

	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestGet_OptionalWithoutDefault(t *testing.T) {
	in := &scriptedReader{lines: []string{""}}
	c := newCollector(in, &bytes.Buffer{})

	got, err := c.Get("name")

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGet_RequiredRepromptsUntilNonEmpty(t *testing.T) {
	var out bytes.Buffer
	in := &scriptedReader{lines: []string{"", "", "bob"}}
	c := newCollector(in, &out)

	got, err := c.Get("name", Required())

	require.NoError(t, err)
	assert.Equal(t, "bob", got)
	assert.Len(t, in.prompts, 3)
	for _, p := range in.prompts {
		assert.Equal(t, "Name: ", p)
	}
	assert.Equal(t, 2, strings.Count(out.String(), "It is necessary to enter the name\n"))
}

func TestGet_RequiredIgnoresDefaultOnEmptyInput(t *testing.T) {
	in := &scriptedReader{lines: []string{"", "value"}}
	c := newCollector(in, &bytes.Buffer{})

	got, err := c.Get("name", Default("x"), Required())

	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Len(t, in.prompts, 2)
}

func TestGet_PassesPrefillOnEveryAttempt(t *testing.T) {
	in := &scriptedReader{lines: []string{"", "edited"}}
	c := newCollector(in, &bytes.Buffer{})

	got, err := c.Get("title", Prefill("draft"), Required())

	require.NoError(t, err)
	assert.Equal(t, "edited", got)
	assert.Equal(t, []string{"draft", "draft"}, in.prefills)
}

func TestGet_ReadErrorPropagates(t *testing.T) {
	in := &scriptedReader{}
	c := newCollector(in, &bytes.Buffer{})

	_, err := c.Get("name", Required())

	assert.True(t, errors.Is(err, io.EOF))
	assert.Contains(t, err.Error(), `reading field "name"`)
}

func TestGet_WithPlainReader(t *testing.T) {
	var out bytes.Buffer
	in := prompt.NewPlain(strings.NewReader("\nvalue\n"), &out, zerolog.Nop())
	c := newCollector(in, &out)

	got, err := c.Get("name", Required())

	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, "Name: It is necessary to enter the name\nName: ", out.String())
}
