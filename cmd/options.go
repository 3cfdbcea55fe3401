package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/evgfitil/ucli/internal/config"
)

var optionsCmd = &cobra.Command{
	Use:   "options TEXT...",
	Short: "Print an options line with [bracketed] keys highlighted",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		newRenderer(cfg, cmd.OutOrStdout()).PrintOptions(strings.Join(args, " "))
		return nil
	},
}
