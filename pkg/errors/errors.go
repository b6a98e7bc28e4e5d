// Package errors defines the sentinel errors shared across initpkg and small
// helpers for wrapping them with context.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Common error types.
var (
	// State errors.
	ErrStateSave = fmt.Errorf("failed to save state file")

	// Index errors.
	ErrIndexUnavailable = fmt.Errorf("package index unavailable")
	ErrIndexParse       = fmt.Errorf("failed to parse package index")

	// Artifact errors.
	ErrArtifactFetch = fmt.Errorf("failed to fetch package artifact")

	// Install errors.
	ErrAlreadyInstalled = fmt.Errorf("package already installed")
	ErrNotInstalled     = fmt.Errorf("package not installed")
	ErrDependencyCycle  = fmt.Errorf("dependency cycle detected")
	ErrMissingMainFile  = fmt.Errorf("no main.init found in package")

	// Config errors.
	ErrConfigParse = fmt.Errorf("failed to parse config")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// NotFoundError reports a package name that is absent from the index. It
// carries the names the index does advertise so callers can show a hint.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("package %q not found in repository", e.Name)
	}
	names := make([]string, len(e.Available))
	copy(names, e.Available)
	sort.Strings(names)
	return fmt.Sprintf("package %q not found in repository (available: %s)", e.Name, strings.Join(names, ", "))
}

// ErrPackageNotFound builds a NotFoundError for the given name.
func ErrPackageNotFound(name string, available []string) error {
	return &NotFoundError{Name: name, Available: available}
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
