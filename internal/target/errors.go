package target

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrUnknownTarget    = errors.New("unknown target")
	ErrDuplicateTarget  = errors.New("duplicate target")
	ErrCyclicDependency = errors.New("cyclic target dependency")
	ErrStepFailed       = errors.New("step failed")
)

// Describes one failed external command.
//
// Carried inside errors marked with [ErrStepFailed] so callers can recover
// the failing command and its exit status instead of parsing a message.
type StepError struct {
	Target   string // Target the step belongs to.
	Command  string // Command line that failed.
	ExitCode int    // Exit status of the process.
	Stderr   string // Captured standard error, possibly empty.
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Returns the process exit status to report for an error.
//
// Zero for nil, the failing step's exit status when the error carries one,
// and 1 for everything else (configuration and graph errors).
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	var stepErr *StepError
	if errors.As(err, &stepErr) && stepErr.ExitCode > 0 {
		return stepErr.ExitCode
	}
	return 1
}
