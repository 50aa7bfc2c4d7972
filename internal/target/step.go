package target

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/gridcraft/cubeci/internal/invoke"
)

// Executes a target's steps in order.
//
// Stops at the first failing step. Steps after a failure never run.
func (d *Dispatcher) executeSteps(ctx context.Context, def *Definition) error {
	state := newStepState(d.shell)
	for i, step := range def.Steps {
		if err := d.executeStep(ctx, def, step, state); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

// Executes a single step, dispatching to command execution or state
// mutation depending on the step's fields.
func (d *Dispatcher) executeStep(ctx context.Context, def *Definition, step Step, state *stepState) error {

	// Standalone modifier(s): persist in state.
	if step.Run == "" {
		state.apply(step)
		return nil
	}

	// Operation with optional scoped modifiers. Step-level modifiers
	// override the persistent state for this command only.
	resolved := state.resolve(step)

	if d.dryRun {
		slog.Info("dry run", "target", def.Name, "command", step.Run)
		return nil
	}

	slog.Debug("run", "command", step.Run, "shell", resolved.shell)

	result, err := d.runner.Run(ctx, invoke.Command{
		Shell: resolved.shell,
		Line:  step.Run,
		Env:   resolved.environ(),
		Dir:   resolved.workdir,
	})
	if err != nil {
		return err
	}

	if result.ExitCode != 0 {
		return errors.Mark(&StepError{
			Target:   def.Name,
			Command:  step.Run,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}, ErrStepFailed)
	}

	return nil
}
