package cli

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgMap         = errors.New("failed to map argument(s)")
)

// UsageError signals that a [Command] was invoked incorrectly, so its usage information should be shown with the error.
// Return one from a [CommandFunc] with [NewUsageError].
type UsageError struct {
	Err error
}

// NewUsageError creates a [UsageError], passing format and args to [fmt.Errorf].
func NewUsageError(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return "usage error"
	}
	return fmt.Sprintf("usage error: %v", e.Err)
}

// Is matches any *UsageError, regardless of what it wraps.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
