package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// ErrNoTerminal is returned by OpenEditor when no terminal can be reached.
var ErrNoTerminal = errors.New("no terminal available")

// Editor reads a line with an inline bubbletea text input. The prefill is
// placed in the input with the cursor at its end, so it can be edited in
// place with the usual cursor keys. The program renders in the normal
// screen, leaving the submitted line in the scrollback.
type Editor struct {
	in  io.Reader // nil reads keys from the controlling terminal
	out io.Writer
	log zerolog.Logger
}

// NewEditor creates an Editor reading keys from in and drawing on out. A nil
// in makes the editor open the controlling terminal for each line.
func NewEditor(in io.Reader, out io.Writer, log zerolog.Logger) *Editor {
	return &Editor{in: in, out: out, log: log}
}

// OpenEditor returns an Editor bound to the terminal, or ErrNoTerminal when
// neither opts.In nor /dev/tty is one.
func OpenEditor(opts Options) (ReadCloser, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}

	if !isTerminal(opts.In) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, ErrNoTerminal
		}
		ok := isTerminal(tty)
		_ = tty.Close()
		if !ok {
			return nil, ErrNoTerminal
		}
	}
	return NewEditor(nil, opts.Out, opts.Logger), nil
}

// ReadLine runs the editor until RETURN, Ctrl+C or Esc.
func (e *Editor) ReadLine(prompt, prefill string) (string, error) {
	options := []tea.ProgramOption{tea.WithOutput(e.out)}
	if e.in == nil {
		options = append(options, tea.WithInputTTY())
	} else {
		options = append(options, tea.WithInput(e.in))
	}

	p := tea.NewProgram(newEditModel(prompt, prefill), options...)
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("line editor: %w", err)
	}

	m, ok := result.(editModel)
	if !ok || m.interrupted {
		return "", ErrInterrupted
	}

	e.log.Debug().Str("line", m.value).Msg("line edited")
	return m.value, nil
}

// Close is a no-op; the terminal is opened per line.
func (e *Editor) Close() error {
	return nil
}

type editModel struct {
	input       textinput.Model
	value       string
	done        bool
	interrupted bool
}

func newEditModel(prompt, prefill string) editModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = lipgloss.NewStyle()
	ti.TextStyle = lipgloss.NewStyle()
	ti.CharLimit = 0
	ti.SetValue(prefill)
	ti.CursorEnd()
	ti.Focus()
	return editModel{input: ti}
}

// Init implements tea.Model.
func (m editModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m editModel) View() string {
	switch {
	case m.done:
		return m.input.Prompt + m.value + "\n"
	case m.interrupted:
		return m.input.Prompt + m.input.Value() + "\n"
	default:
		return m.input.View()
	}
}
