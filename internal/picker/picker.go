// Package picker offers an fzf-style finder as an alternative way to choose
// from a candidate list.
package picker

import (
	"errors"

	"github.com/ktr0731/go-fuzzyfinder"
)

// ErrAborted indicates user cancelled selection
var ErrAborted = errors.New("selection aborted")

// ErrNoCandidates is returned when there is nothing to pick from.
var ErrNoCandidates = errors.New("no candidates to pick from")

// Pick displays an fzf-style picker over candidates and returns the chosen
// one. A single candidate is returned without showing the finder.
func Pick(candidates []string) (string, error) {
	idx, err := PickIndex(len(candidates), func(i int) string {
		return candidates[i]
	})
	if err != nil {
		return "", err
	}
	return candidates[idx], nil
}

// PickIndex displays an fzf-style picker for n items with a custom display
// function and returns the selected index. Returns ErrAborted if the user
// cancels selection.
func PickIndex(n int, display func(i int) string) (int, error) {
	if n <= 0 {
		return -1, ErrNoCandidates
	}
	if n == 1 {
		return 0, nil
	}

	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	idx, err := fuzzyfinder.Find(items, func(i int) string {
		return display(items[i])
	}, fuzzyfinder.WithPromptString("/ "))
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return -1, ErrAborted
		}
		return -1, err
	}

	return items[idx], nil
}

// Action adapts Pick to the selection action signature. It expects the
// candidate list as its only argument.
func Action(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, ErrNoCandidates
	}
	candidates, ok := args[0].([]string)
	if !ok {
		return nil, ErrNoCandidates
	}
	return Pick(candidates)
}
