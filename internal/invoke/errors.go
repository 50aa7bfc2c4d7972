package invoke

import "github.com/cockroachdb/errors"

var ErrInvoke = errors.New("command invocation failed")
