package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"flk/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
var debug bool

// configPath is an explicit configuration file; empty means flk.yaml in the project root.
var configPath string

// systemOverride replaces the detected platform id when set.
var systemOverride string

// rootCmd is the base command. Without a subcommand it behaves like `flk show`.
var rootCmd = &cobra.Command{
	Use:   "flk",
	Short: "Friendly front-end for nix flakes",
	Long: `flk finds the flake.nix above the current directory and runs nix against it.

Targets may be given as .#attr, protocol:path, or a bare name. A bare name is
expanded to the packages or checks output of the current platform.

Running 'flk' without a subcommand is equivalent to 'flk show'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: flk.yaml in the project root)")
	rootCmd.PersistentFlags().StringVar(&systemOverride, "system", "", "Platform to expand bare names for (default: detected)")

	rootCmd.AddCommand(buildCmd, checkCmd, runCmd, showCmd)
}

// Execute runs the CLI and terminates the process with the resulting status.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}

// exitCode prints a fatal error in red and maps it to status 1.
func exitCode(err error) int {
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return 1
	}
	return 0
}
