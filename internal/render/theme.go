package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used for prompts, notices and highlighted tokens.
type Theme struct {
	HeaderFg    string
	InfoFg      string
	HighlightFg string
	renderer    *lipgloss.Renderer
}

// WithRenderer returns a copy of the theme with the given renderer set.
// The renderer decides which output the styles render to, so color detection
// follows the writer the text is printed on (e.g. stderr or /dev/tty).
func (t Theme) WithRenderer(r *lipgloss.Renderer) Theme {
	t.renderer = r
	return t
}

// newStyle creates a new lipgloss.Style using the theme's renderer if set,
// falling back to the default renderer otherwise.
func (t Theme) newStyle() lipgloss.Style {
	if t.renderer != nil {
		return t.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// DefaultTheme returns blue headers, green notices and yellow highlights.
func DefaultTheme() Theme {
	return Theme{
		HeaderFg:    "4",
		InfoFg:      "2",
		HighlightFg: "3",
	}
}

// HeaderStyle returns the style for prompts and plain headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.HeaderFg))
}

// InfoStyle returns the style for informational notices.
func (t Theme) InfoStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.InfoFg))
}

// HighlightStyle returns the style for menu numerals and bracketed affordances.
func (t Theme) HighlightStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.HighlightFg))
}

// StyleFor maps a color name used by Header to a style. Unknown names are
// treated as lipgloss colors directly.
func (t Theme) StyleFor(color string) lipgloss.Style {
	switch color {
	case "", "header":
		return t.HeaderStyle()
	case "info":
		return t.InfoStyle()
	case "highlight":
		return t.HighlightStyle()
	default:
		return t.newStyle().Foreground(lipgloss.Color(color))
	}
}
