package matrix

import "github.com/cockroachdb/errors"

var ErrConfiguration = errors.New("invalid matrix configuration")
