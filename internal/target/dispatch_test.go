package target

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/gridcraft/cubeci/internal/invoke"
)

// Records every command it receives and fails the ones listed in failOn.
type recordingRunner struct {
	commands []invoke.Command
	failOn   map[string]int // command line -> exit code
}

func (r *recordingRunner) Run(_ context.Context, cmd invoke.Command) (*invoke.Result, error) {
	r.commands = append(r.commands, cmd)
	if code, ok := r.failOn[cmd.Line]; ok {
		return &invoke.Result{ExitCode: code, Stderr: "boom"}, nil
	}
	return &invoke.Result{}, nil
}

// Returns the recorded command lines in execution order.
func (r *recordingRunner) lines() []string {
	lines := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		lines[i] = cmd.Line
	}
	return lines
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("executed %d commands, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatcherRunsPrerequisitesFirst(t *testing.T) {
	r := makeRegistry(t,
		Definition{Name: "c", Steps: []Step{{Run: "run c"}}},
		Definition{Name: "b", Prereqs: []string{"c"}, Steps: []Step{{Run: "run b"}}},
		Definition{Name: "a", Prereqs: []string{"b"}, Steps: []Step{{Run: "run a"}}},
	)

	runner := &recordingRunner{}
	d := NewDispatcher(r, runner, Options{})

	if err := d.Run(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertLines(t, runner.lines(), []string{"run c", "run b", "run a"})
}

func TestDispatcherRunsSharedPrerequisiteOnce(t *testing.T) {
	r := makeRegistry(t,
		Definition{Name: "base", Steps: []Step{{Run: "run base"}}},
		Definition{Name: "left", Prereqs: []string{"base"}, Steps: []Step{{Run: "run left"}}},
		Definition{Name: "right", Prereqs: []string{"base"}, Steps: []Step{{Run: "run right"}}},
		Definition{Name: "top", Prereqs: []string{"left", "right"}, Steps: []Step{{Run: "run top"}}},
	)

	runner := &recordingRunner{}
	d := NewDispatcher(r, runner, Options{})

	if err := d.Run(context.Background(), "top"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertLines(t, runner.lines(), []string{"run base", "run left", "run right", "run top"})
}

func TestDispatcherStopsAtFirstFailure(t *testing.T) {
	r := makeRegistry(t,
		Definition{Name: "deps", Steps: []Step{{Run: "install deps"}}},
		Definition{Name: "test", Prereqs: []string{"deps"}, Steps: []Step{
			{Run: "pytest one"},
			{Run: "pytest two"},
		}},
		Definition{Name: "check", Prereqs: []string{"test"}, Steps: []Step{{Run: "report"}}},
	)

	runner := &recordingRunner{failOn: map[string]int{"pytest one": 2}}
	d := NewDispatcher(r, runner, Options{})

	err := d.Run(context.Background(), "check")
	if !errors.Is(err, ErrStepFailed) {
		t.Fatalf("error %v is not ErrStepFailed", err)
	}

	// The failing step's successors and the dependent target never run.
	assertLines(t, runner.lines(), []string{"install deps", "pytest one"})

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("error %v does not carry a StepError", err)
	}
	if stepErr.Command != "pytest one" {
		t.Errorf("StepError.Command = %q, want %q", stepErr.Command, "pytest one")
	}
	if stepErr.ExitCode != 2 {
		t.Errorf("StepError.ExitCode = %d, want 2", stepErr.ExitCode)
	}
	if stepErr.Target != "test" {
		t.Errorf("StepError.Target = %q, want %q", stepErr.Target, "test")
	}

	if ExitStatus(err) != 2 {
		t.Errorf("ExitStatus = %d, want 2", ExitStatus(err))
	}
}

func TestDispatcherUnknownTarget(t *testing.T) {
	r := makeRegistry(t, Definition{Name: "lint", Steps: []Step{{Run: "lint"}}})

	runner := &recordingRunner{}
	d := NewDispatcher(r, runner, Options{})

	err := d.Run(context.Background(), "release")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("error %v is not ErrUnknownTarget", err)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("executed %d commands, want none", len(runner.commands))
	}
}

func TestDispatcherRejectsCycleBeforeExecution(t *testing.T) {
	r := makeRegistry(t,
		Definition{Name: "a", Prereqs: []string{"b"}, Steps: []Step{{Run: "run a"}}},
		Definition{Name: "b", Prereqs: []string{"a"}, Steps: []Step{{Run: "run b"}}},
		Definition{Name: "ok", Steps: []Step{{Run: "run ok"}}},
	)

	runner := &recordingRunner{}
	d := NewDispatcher(r, runner, Options{})

	// Even a target outside the cycle is rejected: the graph is validated
	// as a whole before anything runs.
	err := d.Run(context.Background(), "ok")
	if !errors.Is(err, ErrCyclicDependency) {
		t.Fatalf("error %v is not ErrCyclicDependency", err)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("executed %d commands, want none", len(runner.commands))
	}
}

func TestDispatcherDryRun(t *testing.T) {
	r := makeRegistry(t,
		Definition{Name: "clean", Steps: []Step{{Run: "rm -rf build dist"}}},
	)

	runner := &recordingRunner{}
	d := NewDispatcher(r, runner, Options{DryRun: true})

	if err := d.Run(context.Background(), "clean"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("executed %d commands in dry run, want none", len(runner.commands))
	}
}

func TestDispatcherAppliesStepModifiers(t *testing.T) {
	r := makeRegistry(t,
		Definition{Name: "test", Steps: []Step{
			{Env: map[string]string{"COVERAGE": "1"}, Workdir: "/src"},
			{Run: "pytest"},
		}},
	)

	runner := &recordingRunner{}
	d := NewDispatcher(r, runner, Options{Shell: "/bin/bash"})

	if err := d.Run(context.Background(), "test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.commands) != 1 {
		t.Fatalf("executed %d commands, want 1", len(runner.commands))
	}

	cmd := runner.commands[0]
	if cmd.Shell != "/bin/bash" {
		t.Errorf("Shell = %q, want /bin/bash", cmd.Shell)
	}
	if cmd.Dir != "/src" {
		t.Errorf("Dir = %q, want /src", cmd.Dir)
	}
	if len(cmd.Env) != 1 || cmd.Env[0] != "COVERAGE=1" {
		t.Errorf("Env = %v, want [COVERAGE=1]", cmd.Env)
	}
}

func TestExitStatus(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Errorf("ExitStatus(nil) = %d, want 0", got)
	}

	stepErr := errors.Mark(&StepError{Command: "pytest", ExitCode: 4}, ErrStepFailed)
	if got := ExitStatus(stepErr); got != 4 {
		t.Errorf("ExitStatus(step error) = %d, want 4", got)
	}

	if got := ExitStatus(errors.New("other")); got != 1 {
		t.Errorf("ExitStatus(other) = %d, want 1", got)
	}
}
