// Package flake builds the nix invocations for each flk command and runs them
// through the process orchestrator.
package flake

import (
	"fmt"
	"io"
	"os"
	"strings"

	"flk/internal/config"
	"flk/internal/logger"
	"flk/internal/process"
	"flk/internal/project"
	"flk/internal/reference"
	"flk/internal/show"
)

// Runner executes an external command. process.Run satisfies it.
type Runner func(name string, args []string, opts process.Options) (*process.Result, error)

// Flake runs commands against one project.
type Flake struct {
	ctx    project.Context
	cfg    config.Config
	runner Runner
	out    io.Writer
}

// New returns a Flake that runs cfg.Tool through process.Run and prints
// listings to stdout.
func New(ctx project.Context, cfg config.Config) *Flake {
	return &Flake{ctx: ctx, cfg: cfg, runner: process.Run, out: os.Stdout}
}

// WithRunner replaces the command runner.
func (f *Flake) WithRunner(r Runner) *Flake {
	f.runner = r
	return f
}

// WithOutput sets where the show listing is written.
func (f *Flake) WithOutput(w io.Writer) *Flake {
	f.out = w
	return f
}

// BuildArgs returns the arguments for building ref, or the default package when ref is nil.
func (f *Flake) BuildArgs(ref reference.Reference) []string {
	return f.withTarget([]string{"build"}, ref, reference.Buildable)
}

// CheckArgs returns the arguments for checking ref, or every check when ref is nil.
func (f *Flake) CheckArgs(ref reference.Reference) []string {
	return f.withTarget([]string{"flake", "check"}, ref, reference.Checkable)
}

// RunArgs returns the arguments for running ref, or the default app when ref is nil.
func (f *Flake) RunArgs(ref reference.Reference) []string {
	return f.withTarget([]string{"run"}, ref, reference.Buildable)
}

// ShowArgs returns the arguments for a machine-readable description of the flake.
func (f *Flake) ShowArgs() []string {
	return []string{"flake", "show", "--json"}
}

func (f *Flake) withTarget(args []string, ref reference.Reference, category reference.Category) []string {
	if ref == nil {
		return args
	}
	return append(args, reference.Resolve(ref, category.String(), f.ctx.System()))
}

// Build builds ref, or the default package.
func (f *Flake) Build(ref reference.Reference) (*process.Result, error) {
	return f.delegate(f.BuildArgs(ref), nil)
}

// Check runs ref as a check, or all checks.
func (f *Flake) Check(ref reference.Reference) (*process.Result, error) {
	return f.delegate(f.CheckArgs(ref), nil)
}

// Run runs ref, or the default app. The tool inherits stdin.
func (f *Flake) Run(ref reference.Reference) (*process.Result, error) {
	return f.delegate(f.RunArgs(ref), os.Stdin)
}

func (f *Flake) delegate(args []string, stdin io.Reader) (*process.Result, error) {
	logger.Info("[INFO] Running %s %s\n", f.cfg.Tool, strings.Join(args, " "))
	res, err := f.runner(f.cfg.Tool, args, process.Options{
		EchoStdout: f.cfg.Echo.Stdout,
		EchoStderr: f.cfg.Echo.Stderr,
		Stdin:      stdin,
		Dir:        f.ctx.Root(),
	})
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		logger.Warn("[WARN] %s exited with status %d\n", f.cfg.Tool, res.ExitCode)
	}
	return res, nil
}

// Show lists the outputs the flake provides for the current platform.
// Stdout of the tool is captured for interpretation; stderr is echoed per config.
func (f *Flake) Show() (show.Listing, error) {
	res, err := f.runner(f.cfg.Tool, f.ShowArgs(), process.Options{
		EchoStderr: f.cfg.Echo.Stderr,
		Dir:        f.ctx.Root(),
	})
	if err != nil {
		return nil, err
	}
	if !res.Success() {
		logger.Warn("[WARN] %s exited with status %d\n", f.cfg.Tool, res.ExitCode)
	}

	listing, err := show.Interpret(res.Stdout, f.ctx.System())
	if err != nil {
		return nil, fmt.Errorf("interpreting %s output: %w", f.cfg.Tool, err)
	}
	if err := listing.Write(f.out); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	return listing, nil
}
