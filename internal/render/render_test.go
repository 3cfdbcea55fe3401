package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newColored(buf *bytes.Buffer) *Renderer {
	r := New(buf, DefaultTheme())
	r.SetColorProfile(termenv.ANSI)
	return r
}

func TestHighlightOptions_SingleToken(t *testing.T) {
	r := newColored(&bytes.Buffer{})

	got := r.HighlightOptions("Press [RETURN] to exit")

	assert.Equal(t, "Press "+r.Highlight("[RETURN]")+" to exit", got)
	assert.NotEqual(t, "[RETURN]", r.Highlight("[RETURN]"), "highlight should add color")
}

func TestHighlightOptions_MultipleTokens(t *testing.T) {
	r := newColored(&bytes.Buffer{})

	got := r.HighlightOptions("[s]kip or [q]uit")

	assert.Equal(t, r.Highlight("[s]")+"kip or "+r.Highlight("[q]")+"uit", got)
}

func TestHighlightOptions_NonGreedy(t *testing.T) {
	r := newColored(&bytes.Buffer{})

	got := r.HighlightOptions("[a] b [c]")

	assert.Equal(t, r.Highlight("[a]")+" b "+r.Highlight("[c]"), got)
}

func TestHighlightOptions_NoBrackets(t *testing.T) {
	r := newColored(&bytes.Buffer{})

	assert.Equal(t, "nothing to see", r.HighlightOptions("nothing to see"))
}

func TestPrintOptions_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, DefaultTheme())
	r.SetColorProfile(termenv.Ascii)

	r.PrintOptions("Press [RETURN] to exit")

	assert.Equal(t, "  Press [RETURN] to exit\n", buf.String())
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []HeaderOption
		want string
	}{
		{"plain", "Title", nil, "Title\n"},
		{"tokens", "Name:", []HeaderOption{WithTokens("a", "b")}, "Name: a b\n"},
		{"custom end", "Prompt: ", []HeaderOption{WithEnd("")}, "Prompt: "},
		{"blank line first", "Title", []HeaderOption{WithBlankLine()}, "\nTitle\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(&buf, DefaultTheme())
			r.SetColorProfile(termenv.Ascii)

			r.Header(tt.text, tt.opts...)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestInfoUsesInfoColor(t *testing.T) {
	var buf bytes.Buffer
	r := newColored(&buf)

	r.Info("done")

	want := r.theme.InfoStyle().Render("done") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintCandidates(t *testing.T) {
	var buf bytes.Buffer
	r := newColored(&buf)

	r.PrintCandidates([]string{"apple pie", "banana"}, true)

	want := "  " + r.Highlight("[1]") + " Apple Pie\n" +
		"  [2] Banana\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintCandidates_NoCapitalize(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, DefaultTheme())
	r.SetColorProfile(termenv.Ascii)

	r.PrintCandidates([]string{"apple", "bANANA"}, false)

	assert.Equal(t, "  [1] apple\n  [2] bANANA\n", buf.String())
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"name", "Name"},
		{"module path", "Module Path"},
		{"hELLO", "Hello"},
		{"", ""},
		// Underscores join words and apostrophes stay inside them.
		{"module_path", "Module_path"},
		{"it's", "It's"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Title(tt.in), "Title(%q)", tt.in)
	}
}

func TestInfo_DoesNotMutateCallerOptions(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, DefaultTheme())
	r.SetColorProfile(termenv.Ascii)
	opts := make([]HeaderOption, 1, 4)
	opts[0] = WithEnd("")
	spare := opts[:2]
	spare[1] = WithEnd("!\n")

	r.Info("saved", opts...)

	buf.Reset()
	r.Header("plain", spare...)
	assert.Equal(t, "plain!\n", buf.String())
}
