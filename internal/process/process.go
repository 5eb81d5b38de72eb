// Package process runs the external tool and collects its output.
//
// Stdout and stderr are read concurrently and merged into one ordered
// sequence of tagged lines. Each line is optionally echoed as it arrives and
// always accumulated, so callers can both watch a build live and inspect its
// output afterwards.
package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"flk/internal/logger"
)

var (
	// ErrToolNotFound is returned when the executable is not on the search path.
	ErrToolNotFound = errors.New("tool not found")
	// ErrSpawn is returned when the operating system refuses to start the child.
	ErrSpawn = errors.New("unable to spawn process")
	// ErrAbnormalExit is returned when the child was killed by a signal or
	// otherwise did not exit on its own.
	ErrAbnormalExit = errors.New("child did not exit normally")
)

// Options controls echoing and the child's environment.
type Options struct {
	EchoStdout bool
	EchoStderr bool

	// Stdout and Stderr receive echoed lines. Nil means os.Stdout / os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Stdin is connected to the child; nil means the null device.
	Stdin io.Reader

	// Dir is the child's working directory; empty means the caller's.
	Dir string
}

// Result holds everything the child wrote and how it exited.
type Result struct {
	Stdout   []string
	Stderr   []string
	ExitCode int
}

// Success reports whether the child exited with status zero.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Run looks up name on PATH, runs it with args and returns its output once
// it has exited. A non-zero exit status is not an error.
func Run(name string, args []string, opts Options) (*Result, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrToolNotFound, name, err)
	}

	stdoutSink, stderrSink := opts.Stdout, opts.Stderr
	if stdoutSink == nil {
		stdoutSink = os.Stdout
	}
	if stderrSink == nil {
		stderrSink = os.Stderr
	}

	cmd := exec.Command(path, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	logger.Debug("[DEBUG] Running command %s %s\n", path, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, path, err)
	}

	out := &lineCollector{echo: opts.EchoStdout, sink: stdoutSink}
	errOut := &lineCollector{echo: opts.EchoStderr, sink: stderrSink}
	chunks, readers := merge(stdout, stderr)
	for chunk := range chunks {
		switch chunk.Stream {
		case Stdout:
			out.add(chunk)
		case Stderr:
			errOut.add(chunk)
		}
	}
	result := &Result{Stdout: out.finish(), Stderr: errOut.finish()}
	readErr := readers.Wait()

	// Both pipes are drained, so Wait only reaps the child.
	waitErr := cmd.Wait()
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return nil, fmt.Errorf("waiting for %s: %w", path, waitErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("reading output of %s: %w", path, readErr)
	}

	state := cmd.ProcessState
	if !state.Exited() {
		return nil, fmt.Errorf("%w: %s: %s", ErrAbnormalExit, path, state)
	}
	result.ExitCode = state.ExitCode()
	logger.Debug("[DEBUG] %s exited with status %d\n", path, result.ExitCode)

	return result, nil
}
