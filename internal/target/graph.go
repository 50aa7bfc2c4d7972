package target

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Traversal states for cycle detection.
const (
	unvisited = iota
	visiting
	visited
)

// Checks the prerequisite graph for dangling references and cycles.
//
// Every prerequisite must name a registered target, and the graph must be
// acyclic. Validation runs before any command executes so a malformed graph
// never produces partial side effects. Fails with [ErrUnknownTarget] or
// [ErrCyclicDependency].
func (r *Registry) Validate() error {
	for _, name := range r.order {
		def := r.byName[name]
		for _, dep := range def.Prereqs {
			if _, ok := r.byName[dep]; !ok {
				return errors.Mark(
					errors.Newf("target %q requires unregistered target %q", name, dep),
					ErrUnknownTarget,
				)
			}
		}
	}

	state := make(map[string]int, len(r.order))
	for _, name := range r.order {
		if state[name] == unvisited {
			if err := r.visit(name, state, []string{}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Depth-first traversal with a recursion stack.
//
// A prerequisite found in the visiting state is a back edge, i.e. a cycle.
// The error message spells out the offending chain.
func (r *Registry) visit(name string, state map[string]int, stack []string) error {
	state[name] = visiting
	stack = append(stack, name)

	for _, dep := range r.byName[name].Prereqs {
		switch state[dep] {
		case visiting:
			cycle := append(stack[cycleStart(stack, dep):], dep)
			return errors.Mark(
				errors.Newf("prerequisite cycle: %s", strings.Join(cycle, " -> ")),
				ErrCyclicDependency,
			)
		case unvisited:
			if err := r.visit(dep, state, stack); err != nil {
				return err
			}
		}
	}

	state[name] = visited
	return nil
}

// Returns the index in the stack where the cycle begins.
func cycleStart(stack []string, name string) int {
	for i, s := range stack {
		if s == name {
			return i
		}
	}
	return 0
}
