package flake

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flk/internal/config"
	"flk/internal/process"
	"flk/internal/project"
	"flk/internal/reference"
	"flk/internal/show"
)

// recorder is a Runner that records its invocation and replies with a canned result.
type recorder struct {
	name   string
	args   []string
	opts   process.Options
	result *process.Result
	err    error
}

func (r *recorder) run(name string, args []string, opts process.Options) (*process.Result, error) {
	r.name, r.args, r.opts = name, args, opts
	if r.err != nil {
		return nil, r.err
	}
	if r.result == nil {
		return &process.Result{}, nil
	}
	return r.result, nil
}

func newFlake(t *testing.T, rec *recorder) *Flake {
	t.Helper()
	ctx := project.NewContext("x86_64-linux", "/work/proj")
	return New(ctx, config.Default()).WithRunner(rec.run)
}

func mustParse(t *testing.T, s string) reference.Reference {
	t.Helper()
	ref, err := reference.Parse(s)
	require.NoError(t, err)
	return ref
}

func TestArgs(t *testing.T) {
	f := newFlake(t, &recorder{})

	assert.Equal(t, []string{"build"}, f.BuildArgs(nil))
	assert.Equal(t, []string{"build", ".#packages.x86_64-linux.hello"}, f.BuildArgs(mustParse(t, "hello")))
	assert.Equal(t, []string{"build", "nixpkgs:hello"}, f.BuildArgs(mustParse(t, "nixpkgs:hello")))

	assert.Equal(t, []string{"flake", "check"}, f.CheckArgs(nil))
	assert.Equal(t, []string{"flake", "check", ".#checks.x86_64-linux.fmt"}, f.CheckArgs(mustParse(t, "fmt")))
	assert.Equal(t, []string{"flake", "check", ".#fmt"}, f.CheckArgs(mustParse(t, ".#fmt")))

	assert.Equal(t, []string{"run"}, f.RunArgs(nil))
	assert.Equal(t, []string{"run", ".#packages.x86_64-linux.app"}, f.RunArgs(mustParse(t, "app")))

	assert.Equal(t, []string{"flake", "show", "--json"}, f.ShowArgs())
}

func TestBuild_DelegatesWithEchoAndRoot(t *testing.T) {
	rec := &recorder{}
	_, err := newFlake(t, rec).Build(mustParse(t, "hello"))
	require.NoError(t, err)

	assert.Equal(t, "nix", rec.name)
	assert.Equal(t, []string{"build", ".#packages.x86_64-linux.hello"}, rec.args)
	assert.True(t, rec.opts.EchoStdout)
	assert.True(t, rec.opts.EchoStderr)
	assert.Equal(t, "/work/proj", rec.opts.Dir)
	assert.Nil(t, rec.opts.Stdin)
}

func TestRun_InheritsStdin(t *testing.T) {
	rec := &recorder{}
	_, err := newFlake(t, rec).Run(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"run"}, rec.args)
	assert.Equal(t, os.Stdin, rec.opts.Stdin)
}

func TestCheck_NonZeroExitIsReturnedNotFailed(t *testing.T) {
	rec := &recorder{result: &process.Result{ExitCode: 1, Stderr: []string{"error: check failed"}}}
	res, err := newFlake(t, rec).Check(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
}

func TestDelegate_PropagatesRunnerErrors(t *testing.T) {
	rec := &recorder{err: process.ErrToolNotFound}
	_, err := newFlake(t, rec).Build(nil)
	require.ErrorIs(t, err, process.ErrToolNotFound)
}

func TestShow_InterpretsCapturedStdout(t *testing.T) {
	rec := &recorder{result: &process.Result{Stdout: []string{
		`{"packages": {"x86_64-linux": {"a": {"name": "pkg-a"}, "b": {}}},`,
		` "checks": {"aarch64-linux": {"c": {"name": "c"}}}}`,
	}}}
	var out bytes.Buffer

	listing, err := newFlake(t, rec).WithOutput(&out).Show()
	require.NoError(t, err)

	assert.Equal(t, []string{"flake", "show", "--json"}, rec.args)
	assert.False(t, rec.opts.EchoStdout)
	assert.True(t, rec.opts.EchoStderr)
	assert.Equal(t, show.Listing{
		{Name: "packages", Entries: []string{"packages.x86_64-linux.a: pkg-a"}},
		{Name: "checks", Entries: []string{}},
	}, listing)
	assert.Contains(t, out.String(), "  packages.x86_64-linux.a: pkg-a\n")
}

func TestShow_UnexpectedShape(t *testing.T) {
	rec := &recorder{result: &process.Result{Stdout: []string{`[]`}}}
	_, err := newFlake(t, rec).WithOutput(&bytes.Buffer{}).Show()
	require.ErrorIs(t, err, show.ErrUnexpectedShape)
}

func TestShow_RunnerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := newFlake(t, &recorder{err: boom}).Show()
	require.ErrorIs(t, err, boom)
}

func TestConfigDrivesToolAndEcho(t *testing.T) {
	rec := &recorder{}
	cfg := config.Config{Tool: "nix-unstable", Echo: config.Echo{Stdout: false, Stderr: true}}
	f := New(project.NewContext("aarch64-darwin", "/p"), cfg).WithRunner(rec.run)

	_, err := f.Build(mustParse(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "nix-unstable", rec.name)
	assert.Equal(t, []string{"build", ".#packages.aarch64-darwin.x"}, rec.args)
	assert.False(t, rec.opts.EchoStdout)
	assert.True(t, rec.opts.EchoStderr)
}

func TestDelegate_AnnouncesCommand(t *testing.T) {
	var logged bytes.Buffer
	prev := color.Output
	color.Output = &logged
	t.Cleanup(func() { color.Output = prev })

	_, err := newFlake(t, &recorder{}).Build(mustParse(t, "hello"))
	require.NoError(t, err)
	assert.Contains(t, logged.String(), "[INFO] Running nix build .#packages.x86_64-linux.hello")
}
