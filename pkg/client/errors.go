package client

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrUnreachable is returned when the API cannot be reached, times
	// out, answers with a non-2xx status, or returns an undecodable body.
	ErrUnreachable = errors.New("api unreachable")
)

// IsUnreachable reports whether err means the API could not deliver data.
// Callers treat such errors as "data absent" and degrade the view instead
// of propagating them.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// wrapUnreachable attaches context and the underlying cause to the
// ErrUnreachable sentinel, so errors.Is keeps working on the result.
func wrapUnreachable(cause error, format string, args ...any) error {
	return pkgerrors.Wrapf(ErrUnreachable, format+": %v", append(args, cause)...)
}

func wrapUnreachablef(format string, args ...any) error {
	return pkgerrors.Wrapf(ErrUnreachable, format, args...)
}
