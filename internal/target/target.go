package target

import "github.com/cockroachdb/errors"

// One step of a target's command sequence.
//
// A step either runs a command (Run non-empty) or is a standalone modifier
// that persists shell, workdir, or environment values for the remaining
// steps of the same target.
type Step struct {
	Run     string            // Shell command line to execute.
	Shell   string            // Shell override for this and subsequent steps.
	Workdir string            // Working directory override.
	Env     map[string]string // Environment variables to set.
}

// A named, orchestratable operation.
//
// Prerequisites are named targets that must complete successfully before
// this target's own steps run. Definitions are immutable once registered.
type Definition struct {
	Name    string   // Unique target name (e.g., "build-image").
	Desc    string   // One-line description for listings.
	Prereqs []string // Names of prerequisite targets, in declaration order.
	Steps   []Step   // Command sequence, executed in order.
}

// The static set of declared targets.
//
// Registration order is preserved for listings. The registry is populated
// once at startup and read-only afterwards.
type Registry struct {
	order  []string
	byName map[string]*Definition
}

// Creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Definition)}
}

// Registers a target definition.
//
// Fails with [ErrDuplicateTarget] if a definition with the same name is
// already registered.
func (r *Registry) Add(def Definition) error {
	if def.Name == "" {
		return errors.Mark(errors.New("target name is empty"), ErrDuplicateTarget)
	}
	if _, exists := r.byName[def.Name]; exists {
		return errors.Mark(errors.Newf("target %q is already registered", def.Name), ErrDuplicateTarget)
	}

	r.byName[def.Name] = &def
	r.order = append(r.order, def.Name)
	return nil
}

// Returns the definition for a name, if registered.
func (r *Registry) Get(name string) (*Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Returns all registered target names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
