package config

import "github.com/cockroachdb/errors"

var ErrConfig = errors.New("invalid configuration")
