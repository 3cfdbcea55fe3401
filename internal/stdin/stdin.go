// Package stdin reads candidate lists piped into the program.
package stdin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const maxSize = 64 * 1024 // 64KB

// ErrTooLarge indicates piped input exceeds the size limit.
var ErrTooLarge = errors.New("stdin input too large (max 64KB)")

// Reader provides methods for reading stdin content.
type Reader struct {
	input io.Reader
}

// New creates a new Reader with the provided input.
// Pass os.Stdin for normal operation.
func New(input io.Reader) *Reader {
	return &Reader{input: input}
}

// IsPiped returns true if stdin contains piped data (not a terminal).
func (r *Reader) IsPiped() bool {
	if f, ok := r.input.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

// Read reads up to 64KB from stdin if it's piped.
// Returns empty string and nil error if stdin is a terminal.
func (r *Reader) Read() (string, error) {
	if !r.IsPiped() {
		return "", nil
	}

	data, err := io.ReadAll(io.LimitReader(r.input, int64(maxSize)+1))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) > maxSize {
		return "", ErrTooLarge
	}

	return string(data), nil
}

// Lines returns the non-blank piped lines with surrounding whitespace
// removed, in order. A terminal stdin yields nil.
func (r *Reader) Lines() ([]string, error) {
	content, err := r.Read()
	if err != nil || content == "" {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
