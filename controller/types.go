package controller

import "errors"

// ErrInvalidConfig is returned by Run when the configuration fails
// validation before any graph is touched (spec.md §7's "argument error"
// class).
var ErrInvalidConfig = errors.New("controller: invalid configuration")
