package cmd

import (
	"github.com/spf13/cobra"

	"flk/internal/flake"
	"flk/internal/process"
	"flk/internal/reference"
)

// targetCommand builds a subcommand that takes an optional reference and
// hands it to one of the flake operations.
func targetCommand(use, short string, op func(*flake.Flake, reference.Reference) (*process.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [reference]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseTarget(args)
			if err != nil {
				return err
			}
			f, err := loadFlake()
			if err != nil {
				return err
			}
			_, err = op(f, ref)
			return err
		},
	}
}

var buildCmd = targetCommand("build", "Build a package of the flake", (*flake.Flake).Build)

var checkCmd = targetCommand("check", "Run the checks of the flake", (*flake.Flake).Check)

var runCmd = targetCommand("run", "Run a package of the flake", (*flake.Flake).Run)
