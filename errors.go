package workbook

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this module wraps one of them (or
// an I/O error) so callers can branch with errors.Is.
var (
	// ErrInvalidArgument reports a missing, empty, out of range or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound reports a well formed identifier that matches no record.
	ErrNotFound = errors.New("not found")
)

// invalidf returns an error wrapping ErrInvalidArgument.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// notFoundf returns an error wrapping ErrNotFound.
func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
