package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgfitil/ucli/internal/clipboard"
	"github.com/evgfitil/ucli/internal/field"
	"github.com/evgfitil/ucli/internal/picker"
	"github.com/evgfitil/ucli/internal/selection"
	"github.com/evgfitil/ucli/internal/stdin"
)

const (
	menuOptions     = "[/] find  [e]dit  [s]kip  [q]uit"
	ackOptions      = "Press [RETURN] to continue, [s]kip or [q]uit"
	findTrigger     = "/"
	editTrigger     = "e"
	defaultEditName = "value"
)

var (
	selectMessage string
	selectCopy    bool
	selectNoList  bool
	selectTitle   bool
	selectEdit    string
)

var selectCmd = &cobra.Command{
	Use:   "select [candidates...]",
	Short: "Choose one candidate from a numbered menu",
	Long: `Shows the candidates as a numbered menu and prints the chosen one.

Candidates are taken from the arguments, or one per line from piped stdin.
Press RETURN for the first candidate, type its number, "/" to search,
"e" to type a custom value, "s" to skip or "q" to quit.`,
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringVarP(&selectMessage, "message", "m", "", "prompt message (default from config)")
	selectCmd.Flags().BoolVar(&selectCopy, "copy", false, "copy the result to the clipboard")
	selectCmd.Flags().BoolVar(&selectNoList, "no-list", false, "only ask for acknowledgement; prints true on RETURN")
	selectCmd.Flags().BoolVar(&selectTitle, "title", false, "title-case candidates in the menu")
	selectCmd.Flags().StringVar(&selectEdit, "edit-name", defaultEditName, "field name shown when typing a custom value")
}

func runSelect(cmd *cobra.Command, args []string) error {
	var candidates []string
	if !selectNoList {
		var err error
		if candidates, err = readCandidates(cmd, args); err != nil {
			return err
		}
	}

	tk, err := newToolkit()
	if err != nil {
		return err
	}
	defer func() { _ = tk.Close() }()

	var actions selection.Actions
	if candidates != nil {
		tk.out.PrintCandidates(candidates, selectTitle)
		tk.out.PrintOptions(menuOptions)
		actions = selection.Actions{
			findTrigger: selection.CallWith(picker.Action, candidates),
			editTrigger: selection.Call(func() (any, error) {
				return tk.edits.Get(selectEdit, field.Prefill(candidates[0]), field.Required())
			}),
		}
	} else {
		tk.out.PrintOptions(ackOptions)
	}

	var opts []selection.Option
	if selectMessage != "" {
		opts = append(opts, selection.WithMessage(selectMessage))
	}

	outcome, err := selection.Resolve(tk.resolver, candidates, actions, opts...)
	if err != nil {
		return err
	}
	tk.log.Debug().Stringer("kind", outcome.Kind).Msg("selection resolved")

	result, ok := formatOutcome(outcome)
	if !ok {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)

	if selectCopy {
		if err := clipboard.Copy(result); err != nil {
			return err
		}
	}
	return nil
}

func readCandidates(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	lines, err := stdin.New(cmd.InOrStdin()).Lines()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("no candidates: pass them as arguments or pipe them one per line")
	}
	return lines, nil
}

// formatOutcome returns the text printed for an outcome. Skips print nothing.
func formatOutcome(o selection.Outcome[string]) (string, bool) {
	switch o.Kind {
	case selection.Chosen:
		return o.Value, true
	case selection.Invoked:
		if o.Result == nil {
			return "", false
		}
		return fmt.Sprint(o.Result), true
	case selection.Acknowledged:
		return "true", true
	default:
		return "", false
	}
}

