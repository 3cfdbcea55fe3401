package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evgfitil/ucli/internal/session"
)

var (
	dropMessage string
	dropCode    int
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Print a closing message, wait for RETURN and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tk, err := newToolkit()
		if err != nil {
			return err
		}
		defer func() { _ = tk.Close() }()

		return tk.session.Terminate(dropMessage, dropCode)
	},
}

func init() {
	dropCmd.Flags().StringVarP(&dropMessage, "message", "m", "", "closing message, underlined with dashes")
	dropCmd.Flags().IntVarP(&dropCode, "code", "c", session.DefaultCode, "exit status")
}
