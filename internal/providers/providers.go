// Package providers holds the shared result conventions for external
// data-source clients. A provider that has no record for a token returns
// ErrNotFound; anything else is a real transport or payload failure and
// carries its cause.
package providers

import (
	"context"
	"errors"
)

// ErrNotFound means the provider answered but has no record for the
// requested token. It is an expected outcome, not a failure.
var ErrNotFound = errors.New("provider: not found")

// IsNotFound reports whether err is the expected-absence result.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Outcome labels a finished provider call for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsNotFound(err):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
