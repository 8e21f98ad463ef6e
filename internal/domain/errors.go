package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTotp indicates an entry without a usable TOTP configuration.
var ErrNoTotp = errors.New("no TOTP set up")

// InvalidTimeoutError reports a timeout argument that is not a positive integer.
type InvalidTimeoutError struct {
	Raw string
}

func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("invalid timeout value %s", e.Raw)
}

// EntryNotFoundError reports a path with no matching entry.
type EntryNotFoundError struct {
	Path string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry %s not found", e.Path)
}

// AttributeNotFoundError reports a query matching no attribute keys.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("attribute %q not found", e.Name)
}

// AmbiguousAttributeError reports a query matching more than one attribute key.
// Matches preserves the order returned by FindAttributes.
type AmbiguousAttributeError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousAttributeError) Error() string {
	return fmt.Sprintf("attribute %s is ambiguous, it matches %s", e.Name, strings.Join(e.Matches, ", "))
}

// ExitError carries a process exit code through cobra back to main.
// Any message has already been written to the proper stream.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
