package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flk/internal/logger"
)

// AnchorFile is the manifest whose directory marks a project root.
const AnchorFile = "flake.nix"

// ErrNoProject is returned when no ancestor directory contains AnchorFile.
var ErrNoProject = errors.New("unable to find a " + AnchorFile + " in the directory ancestry")

// Locate walks from start towards the filesystem root and returns the first
// directory containing AnchorFile as a regular file.
func Locate(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		logger.Debug("[DEBUG] Looking for %s in %s\n", AnchorFile, dir)
		if info, err := os.Stat(filepath.Join(dir, AnchorFile)); err == nil && info.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from %s)", ErrNoProject, start)
		}
		dir = parent
	}
}

// Discover locates the project root above start and returns the execution
// context for this invocation.
func Discover(start, system string) (Context, error) {
	root, err := Locate(start)
	if err != nil {
		return Context{}, err
	}
	return Open(root, system), nil
}

// Open builds the execution context for an already located root. A root
// without git metadata only triggers a warning.
func Open(root, system string) Context {
	// .git may be a directory or, for worktrees and submodules, a file.
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		logger.Warn("[WARN] Flake at %s is not a git repo\n", root)
	}
	return NewContext(system, root)
}
