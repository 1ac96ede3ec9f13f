package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Commander runs a command and reports its output.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// Output captures the result of a command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError is returned when a command runs but exits non-zero.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Runner executes commands with Dir as the working directory.
type Runner struct {
	Dir string
	// Env is appended to the current process environment.
	Env []string
	// Stdout and Stderr receive the streamed output; nil means os.Stdout/os.Stderr.
	// Use io.Discard to run quietly.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner for dir that streams to the process stdout/stderr.
func New(dir string) *Runner {
	return &Runner{Dir: dir}
}

// Quiet returns a Runner for dir that only captures output.
func Quiet(dir string) *Runner {
	return &Runner{Dir: dir, Stdout: io.Discard, Stderr: io.Discard}
}

// Run executes name with args. A non-zero exit status is reported as *ExitError
// alongside the captured output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("command %q not found: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, &ExitError{
				Command: strings.Join(append([]string{name}, args...), " "),
				Code:    output.ExitCode,
				Stderr:  output.Stderr,
			}
		}
		return output, fmt.Errorf("running %s: %w", name, err)
	}

	return output, nil
}

// RunLine splits line on whitespace and runs the result, e.g. RunLine(ctx, c, "git init").
func RunLine(ctx context.Context, c Commander, line string) (*Output, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return c.Run(ctx, fields[0], fields[1:]...)
}

// NodeScript runs a JavaScript file from the project's node_modules through
// node. script is relative to dir and is looked up in fsys.
func NodeScript(ctx context.Context, c Commander, fsys afero.Fs, dir, script string, args ...string) (*Output, error) {
	if _, err := fsys.Stat(filepath.Join(dir, script)); err != nil {
		return nil, fmt.Errorf("script %s not found: %w", script, err)
	}
	return c.Run(ctx, "node", append([]string{script}, args...)...)
}
