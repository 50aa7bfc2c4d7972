// Package target resolves and executes the declared build targets.
//
// A target is a named operation with declared prerequisites and an ordered
// command sequence. Targets form a directed acyclic graph; the dispatcher
// validates the whole graph (dangling references, cycles) before anything
// runs, then executes the requested target's prerequisite chain in
// depth-first post-order, each target at most once per invocation.
//
// Command execution is delegated to the invoke package. Step state
// (environment variables, working directory, shell) is accumulated across
// steps within a target and reset between targets. The first failing
// command aborts the whole chain; its exit status is preserved inside the
// returned error for exit-code propagation.
//
// Example usage:
//
//	d := target.NewDispatcher(registry, &invoke.ExecRunner{}, target.Options{
//	    Shell: "/bin/sh",
//	})
//	if err := d.Run(ctx, "run-tests"); err != nil {
//	    os.Exit(target.ExitStatus(err))
//	}
package target
