package invoke

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Shell used when a command does not name one.
const DefaultShell = "/bin/sh"

// One external process invocation.
//
// The command line is passed to the shell as a single argument via
// "shell -c line", so shell globbing and pipelines behave as they would
// in a Makefile recipe.
type Command struct {
	Shell string   // Shell binary. Defaults to [DefaultShell] when empty.
	Line  string   // Command line to execute.
	Env   []string // "key=value" overrides merged over the parent environment.
	Dir   string   // Working directory. Defaults to the parent's when empty.
}

// Returns the command as a printable string for logs and error messages.
func (c Command) String() string {
	return c.Line
}

// Output of a completed command.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs external commands.
type Runner interface {

	// Runs the command and blocks until it exits.
	//
	// A non-zero exit code is reported through the result, not the error;
	// the error is reserved for commands that could not run at all.
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Executes commands as real child processes.
type ExecRunner struct {
	Stdout io.Writer // Stream for command stdout. Defaults to os.Stdout.
	Stderr io.Writer // Stream for command stderr. Defaults to os.Stderr.
}

// Runs the command via "shell -c line" and waits for it to exit.
//
// Stdout and stderr are both captured and streamed, so interactive targets
// show their output live while failures still carry the captured stderr.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (*Result, error) {
	shell := cmd.Shell
	if shell == "" {
		shell = DefaultShell
	}

	var stdout, stderr bytes.Buffer

	proc := exec.CommandContext(ctx, shell, "-c", cmd.Line)
	proc.Dir = cmd.Dir
	proc.Env = mergeEnv(os.Environ(), cmd.Env)
	proc.Stdout = io.MultiWriter(&stdout, r.stdout())
	proc.Stderr = io.MultiWriter(&stderr, r.stderr())

	err := proc.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		// Exit code zero.
	case errors.As(err, &exitErr):
		// The process ran and exited non-zero; the caller decides.
	default:
		return nil, errors.Mark(errors.Wrapf(err, "exec %q", cmd.Line), ErrInvoke)
	}

	return &Result{
		ExitCode: proc.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Returns the stdout stream, defaulting to os.Stdout.
func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

// Returns the stderr stream, defaulting to os.Stderr.
func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Entries without an equals sign are skipped.
func mergeEnv(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overrides))
	seen := make(map[string]int, len(base))

	for _, entry := range append(append([]string{}, base...), overrides...) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, dup := seen[k]; dup {
			merged[i] = entry
			continue
		}
		seen[k] = len(merged)
		merged = append(merged, entry)
	}

	return merged
}
