package filetree

import (
	"errors"
	"fmt"
)

var (
	// ErrNavigation is wrapped by every NavigationError.
	ErrNavigation = errors.New("navigation error")
	// ErrNoSufficientDirectory is returned when no directory frees enough space.
	ErrNoSufficientDirectory = errors.New("no directory is large enough")
)

const (
	navigationErrorFormat = "line %d: cd %s from %s: %s"

	reasonAboveRoot     = "already at root"
	reasonUnknownTarget = "no such directory"
	reasonNotDirectory  = "not a directory"
)

// NavigationError reports a cd that cannot be followed from the current directory.
type NavigationError struct {
	Line   int
	Target string
	From   string
	Reason string
}

func (navigationError *NavigationError) Error() string {
	return fmt.Sprintf(navigationErrorFormat, navigationError.Line, navigationError.Target, navigationError.From, navigationError.Reason)
}

// Unwrap lets errors.Is match ErrNavigation.
func (navigationError *NavigationError) Unwrap() error {
	return ErrNavigation
}
