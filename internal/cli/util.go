package cli

import (
	"fmt"
)

// MustGet wraps a [pflag.FlagSet] getter, and panics if the flag isn't defined or has another type.
// Flags are defined next to the [CommandFunc] that reads them, so a failure here is a programming error.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MapArgs assigns positional arguments to targets in order, and requires at least minArgs of them.
// Targets beyond the given arguments are left unchanged, so optional arguments can be given a default beforehand.
// Arguments beyond the targets are returned.
func MapArgs(args []string, minArgs int, targets ...*string) ([]string, error) {
	if len(args) < minArgs {
		return nil, fmt.Errorf("%w: expected at least %d argument(s), got %d", ErrArgMap, minArgs, len(args))
	}
	if len(targets) < minArgs {
		return nil, fmt.Errorf("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	for i, target := range targets {
		if target == nil {
			return nil, fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		if i < len(args) {
			*target = args[i]
		}
	}
	if len(args) > len(targets) {
		return args[len(targets):], nil
	}
	return nil, nil
}
