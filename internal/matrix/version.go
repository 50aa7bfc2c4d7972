package matrix

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// A dotted-numeric version identifier (e.g., "3.8", "2.4.1").
//
// Components are compared numerically, so "3.10" sorts after "3.9". Missing
// trailing components are treated as zero, making "3" and "3.0" equal.
type Version string

// Returns the numeric components of the version.
//
// Fails if the version is empty or any component is not a non-negative
// integer.
func (v Version) components() ([]int, error) {
	if strings.TrimSpace(string(v)) == "" {
		return nil, errors.Mark(errors.New("empty version"), ErrConfiguration)
	}

	parts := strings.Split(string(v), ".")
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, errors.Mark(
				errors.Newf("version %q: component %q is not numeric", v, part),
				ErrConfiguration,
			)
		}
		nums[i] = n
	}
	return nums, nil
}

// Compares two versions by their dotted numeric components.
//
// Returns -1 if v is older than other, 0 if equal, and 1 if newer. Both
// versions must be valid; invalid versions compare as equal so callers are
// expected to validate first.
func (v Version) Compare(other Version) int {
	a, errA := v.components()
	b, errB := other.components()
	if errA != nil || errB != nil {
		return 0
	}

	for i := 0; i < len(a) || i < len(b); i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
