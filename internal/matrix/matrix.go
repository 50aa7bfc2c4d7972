package matrix

import "github.com/cockroachdb/errors"

// Separator joining the two halves of a combination tag.
const tagSeparator = "-"

// An ordered axis of the build matrix.
//
// The order is the declaration order from configuration and is preserved
// through generation. A VersionSet is never mutated after construction.
type VersionSet []Version

// Returns an error unless the set is non-empty and every version in it is a
// unique, valid dotted-numeric identifier.
//
// An empty axis would make the whole matrix empty, and a repeated version
// would make the product emit duplicate combinations; downstream tooling
// must treat both as a misconfiguration rather than silently proceeding.
func (s VersionSet) Validate() error {
	if len(s) == 0 {
		return errors.Mark(errors.New("empty version set"), ErrConfiguration)
	}

	seen := make(map[Version]bool, len(s))
	for _, v := range s {
		if _, err := v.components(); err != nil {
			return err
		}
		if seen[v] {
			return errors.Mark(errors.Newf("version %q appears more than once", v), ErrConfiguration)
		}
		seen[v] = true
	}
	return nil
}

// Returns the newest version in the set by dotted-numeric ordering.
//
// The set must be valid and non-empty.
func (s VersionSet) Latest() Version {
	latest := s[0]
	for _, v := range s[1:] {
		if v.Compare(latest) > 0 {
			latest = v
		}
	}
	return latest
}

// One (interpreter-version, library-version) pair of the build matrix.
type Combination struct {
	Interpreter Version // Interpreter version (e.g., "3.8").
	Library     Version // Geospatial library version (e.g., "3").
}

// Renders the combination as a single tag (e.g., "3.8-3").
//
// Tags key per-environment specification files maintained outside this tool.
func (c Combination) Tag() string {
	return string(c.Interpreter) + tagSeparator + string(c.Library)
}

// Enumerates the Cartesian product of the two version axes.
//
// The interpreter version is the outer axis: for each interpreter version,
// every library version is emitted before advancing. The result contains
// exactly len(interpreters) * len(libraries) combinations with no duplicates.
// Fails with [ErrConfiguration] if either axis is empty or contains an
// invalid version.
func Generate(interpreters, libraries VersionSet) ([]Combination, error) {
	if err := interpreters.Validate(); err != nil {
		return nil, errors.Wrap(err, "interpreter versions")
	}
	if err := libraries.Validate(); err != nil {
		return nil, errors.Wrap(err, "library versions")
	}

	combos := make([]Combination, 0, len(interpreters)*len(libraries))
	for _, interp := range interpreters {
		for _, lib := range libraries {
			combos = append(combos, Combination{Interpreter: interp, Library: lib})
		}
	}
	return combos, nil
}

// Returns the newest combination of the two axes.
//
// Both axes must be valid. The newest combination pairs the latest
// interpreter version with the latest library version.
func Newest(interpreters, libraries VersionSet) (Combination, error) {
	if err := interpreters.Validate(); err != nil {
		return Combination{}, errors.Wrap(err, "interpreter versions")
	}
	if err := libraries.Validate(); err != nil {
		return Combination{}, errors.Wrap(err, "library versions")
	}

	return Combination{
		Interpreter: interpreters.Latest(),
		Library:     libraries.Latest(),
	}, nil
}
