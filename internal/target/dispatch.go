package target

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/gridcraft/cubeci/internal/invoke"
)

// Controls dispatcher behavior.
type Options struct {
	Shell  string // Default shell for run steps. Defaults to invoke.DefaultShell.
	DryRun bool   // Log commands instead of executing them.
}

// Resolves and executes targets against a command runner.
//
// Execution is strictly sequential: one command is in flight at a time, and
// a target's own steps run only after every prerequisite target completed
// successfully. There are no retries and no partial-completion checkpoints;
// a failed run is re-invoked from the top by the caller.
type Dispatcher struct {
	registry *Registry
	runner   invoke.Runner
	shell    string
	dryRun   bool
}

// Creates a [Dispatcher] over a registry and runner.
func NewDispatcher(registry *Registry, runner invoke.Runner, opts Options) *Dispatcher {
	shell := opts.Shell
	if shell == "" {
		shell = invoke.DefaultShell
	}

	return &Dispatcher{
		registry: registry,
		runner:   runner,
		shell:    shell,
		dryRun:   opts.DryRun,
	}
}

// Executes the named target and its prerequisite chain.
//
// The full registry is validated first, so cycles and dangling prerequisite
// references are rejected before any command executes. Prerequisites run in
// depth-first post-order, each at most once per invocation even when
// reachable via multiple paths. Fails with [ErrUnknownTarget],
// [ErrCyclicDependency], or [ErrStepFailed].
func (d *Dispatcher) Run(ctx context.Context, name string) error {
	if err := d.registry.Validate(); err != nil {
		return err
	}

	def, ok := d.registry.Get(name)
	if !ok {
		return errors.Mark(errors.Newf("target %q is not registered", name), ErrUnknownTarget)
	}

	slog.Info("resolving target", "target", name)

	return d.run(ctx, def, make(map[string]bool))
}

// Runs a target after its prerequisites, tracking completed targets.
//
// The done set guards against running a target twice when it is reachable
// via multiple prerequisite paths. Targets are marked done only after their
// steps all succeeded.
func (d *Dispatcher) run(ctx context.Context, def *Definition, done map[string]bool) error {
	if done[def.Name] {
		return nil
	}

	for _, dep := range def.Prereqs {
		pre, _ := d.registry.Get(dep) // Presence guaranteed by Validate.
		if err := d.run(ctx, pre, done); err != nil {
			return err
		}
	}

	if len(def.Steps) > 0 {
		slog.Info("executing target", "target", def.Name, "steps", len(def.Steps))
	}

	if err := d.executeSteps(ctx, def); err != nil {
		return errors.Wrapf(err, "target %s", def.Name)
	}

	done[def.Name] = true
	return nil
}
