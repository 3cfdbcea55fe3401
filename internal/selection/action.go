package selection

import "errors"

// ErrEmptyAction is returned when an Action without a callable is invoked.
var ErrEmptyAction = errors.New("action has no callable")

type actionKind int

const (
	noArgs actionKind = iota + 1
	withArgs
)

// Action is a deferred operation bound to a trigger. Build one with Call or
// CallWith.
type Action struct {
	kind     actionKind
	call     func() (any, error)
	callArgs func(args ...any) (any, error)
	args     []any
}

// Actions maps a trigger, matched verbatim against the input line, to the
// action it runs.
type Actions map[string]Action

// Call wraps a callable that takes no arguments.
func Call(fn func() (any, error)) Action {
	return Action{kind: noArgs, call: fn}
}

// CallWith wraps a callable together with the arguments it is invoked with.
func CallWith(fn func(args ...any) (any, error), args ...any) Action {
	return Action{kind: withArgs, callArgs: fn, args: args}
}

// Invoke runs the action and returns its result.
func (a Action) Invoke() (any, error) {
	switch a.kind {
	case noArgs:
		if a.call != nil {
			return a.call()
		}
	case withArgs:
		if a.callArgs != nil {
			return a.callArgs(a.args...)
		}
	}
	return nil, ErrEmptyAction
}
