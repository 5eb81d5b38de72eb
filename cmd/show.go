package cmd

import (
	"github.com/spf13/cobra"
)

// showCmd lists the outputs of the flake for the current platform.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the outputs of the flake for this platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFlake()
		if err != nil {
			return err
		}
		_, err = f.WithOutput(cmd.OutOrStdout()).Show()
		return err
	},
}
