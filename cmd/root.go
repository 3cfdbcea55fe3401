package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgfitil/ucli/internal/config"
	"github.com/evgfitil/ucli/internal/picker"
	"github.com/evgfitil/ucli/internal/prompt"
)

const ExitCodeCancelled = 130

var (
	Version    = "dev"
	showConfig bool
	logLevel   string
	logJSON    bool
	noColor    bool
)

// ErrCancelled indicates user cancelled the operation.
var ErrCancelled = errors.New("operation cancelled")

var rootCmd = &cobra.Command{
	Use:   "ucli",
	Short: "Interactive prompts and numbered menus for shell scripts",
	Long: `ucli renders colored prompts, collects field input and resolves a choice
from a numbered list of candidates. Menus and prompts are drawn on stderr so
the result printed on stdout can be captured with $(...).`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().BoolVar(&showConfig, "config", false, "show config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error|off), overrides config")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON lines")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(selectCmd, fieldCmd, dropCmd, optionsCmd)
}

// Execute runs the root command
func Execute() error {
	return translate(rootCmd.Execute())
}

func run(cmd *cobra.Command, _ []string) error {
	if showConfig {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		return nil
	}
	return cmd.Help()
}

// translate maps user cancellation from any layer to ErrCancelled.
func translate(err error) error {
	if errors.Is(err, prompt.ErrInterrupted) || errors.Is(err, picker.ErrAborted) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return err
}
