package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgfitil/ucli/internal/field"
)

var (
	fieldDefault  string
	fieldPrefill  string
	fieldRequired bool
)

var fieldCmd = &cobra.Command{
	Use:   "field NAME",
	Short: "Ask for a single text value",
	Long: `Prompts for NAME and prints the entered value.

An empty answer yields --default. With --required the prompt repeats until
something is entered. --prefill puts editable text on the input line.`,
	Args: cobra.ExactArgs(1),
	RunE: runField,
}

func init() {
	fieldCmd.Flags().StringVarP(&fieldDefault, "default", "d", "", "value used when the answer is empty")
	fieldCmd.Flags().StringVarP(&fieldPrefill, "prefill", "p", "", "editable text placed on the input line")
	fieldCmd.Flags().BoolVarP(&fieldRequired, "required", "r", false, "repeat the prompt until a value is entered")
}

func runField(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit()
	if err != nil {
		return err
	}
	defer func() { _ = tk.Close() }()

	opts := []field.Option{field.Default(fieldDefault)}
	if fieldPrefill != "" {
		opts = append(opts, field.Prefill(fieldPrefill))
	}
	if fieldRequired {
		opts = append(opts, field.Required())
	}

	value, err := tk.fields.Get(args[0], opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
