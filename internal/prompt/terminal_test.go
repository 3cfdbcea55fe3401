package prompt

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeTerminal returns a Terminal reading from a pipe that already holds typed.
func pipeTerminal(t *testing.T, typed string) (*Terminal, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	_, err = w.WriteString(typed)
	require.NoError(t, err)

	term, err := NewTerminal(r, io.Discard, DefaultHistoryLimit, zerolog.Nop())
	require.NoError(t, err)
	return term, r
}

func TestTerminal_ReadLine(t *testing.T) {
	term, _ := pipeTerminal(t, "hello\r")
	defer term.Close()

	got, err := term.ReadLine("Name: ", "")

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestTerminal_PrefillReturnedOnEnter(t *testing.T) {
	term, _ := pipeTerminal(t, "\r")
	defer term.Close()

	got, err := term.ReadLine("Value: ", "apple")

	require.NoError(t, err)
	assert.Equal(t, "apple", got)
}

func TestTerminal_PrefillIsEditable(t *testing.T) {
	term, _ := pipeTerminal(t, "pie\r")
	defer term.Close()

	got, err := term.ReadLine("Value: ", "apple ")

	require.NoError(t, err)
	assert.Equal(t, "apple pie", got)
}

func TestTerminal_CtrlCInterrupts(t *testing.T) {
	term, _ := pipeTerminal(t, "abc\x03")
	defer term.Close()

	_, err := term.ReadLine("Name: ", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterrupted), "expected ErrInterrupted, got %v", err)
}

func TestTerminal_CloseReleasesOwnedFile(t *testing.T) {
	term, r := pipeTerminal(t, "")
	term.owned = r

	require.NoError(t, term.Close())

	assert.ErrorIs(t, r.Close(), os.ErrClosed)
}

func TestTerminal_CloseLeavesBorrowedFileOpen(t *testing.T) {
	term, r := pipeTerminal(t, "")

	require.NoError(t, term.Close())

	assert.NoError(t, r.Close())
}
