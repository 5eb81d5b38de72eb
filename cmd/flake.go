package cmd

import (
	"fmt"
	"os"

	"flk/internal/config"
	"flk/internal/flake"
	"flk/internal/logger"
	"flk/internal/project"
	"flk/internal/reference"
	"flk/internal/system"
)

// loadFlake discovers the project from the working directory, loads its
// configuration and settles the platform id for this invocation.
func loadFlake() (*flake.Flake, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	// Locate before loading config: flk.yaml lives next to flake.nix.
	root, err := project.Locate(cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	ctx := project.Open(root, pickSystem(systemOverride, cfg.System, system.Current()))
	logger.Debug("[DEBUG] Using flake at %s for %s\n", ctx.Root(), ctx.System())

	return flake.New(ctx, cfg), nil
}

func loadConfig(root string) (config.Config, error) {
	if configPath != "" {
		return config.LoadConfig(configPath)
	}
	return config.LoadProjectConfig(root)
}

// pickSystem returns the first non-empty platform id.
func pickSystem(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return system.Unknown
}

// parseTarget parses the optional reference argument; no argument yields nil.
func parseTarget(args []string) (reference.Reference, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return reference.Parse(args[0])
}
