package main

import (
	"flk/cmd"
)

// main delegates to cmd.Execute, which parses the command line and runs the
// selected command.
//
// flk is a thin front-end for nix flakes:
//   - finds the nearest flake.nix above the working directory
//   - expands bare target names into packages.<system>.<name> or checks.<system>.<name>
//   - runs nix build / nix flake check / nix run, streaming output live
//   - turns `nix flake show --json` into a short listing for the current platform
//
// Any fatal error (no flake, nix missing, unparsable reference, unexpected
// show output, nix killed by a signal) exits with status 1. A failing nix
// build is reported by nix itself and does not change flk's exit status.
func main() {
	cmd.Execute()
}
