package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure and decides the process exit code
type Kind int

const (
	KindInternal   Kind = iota // Unexpected failure
	KindUsage                  // Malformed command line; the window manager was not contacted
	KindConfig                 // Unreadable or invalid configuration file
	KindConnection             // Could not open the IPC session
	KindQuery                  // GET_WORKSPACES / GET_TREE failed or disagree with each other
	KindCommand                // RUN_COMMAND failed
)

// String returns a short label for the kind
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindCommand:
		return "command"
	default:
		return "internal"
	}
}

// ExitCode returns the process exit status for the kind
func (k Kind) ExitCode() int {
	switch k {
	case KindUsage:
		return 2
	case KindConnection:
		return 3
	case KindQuery:
		return 4
	case KindCommand:
		return 5
	case KindConfig:
		return 6
	default:
		return 1
	}
}

// Error is a classified error with optional context
type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new classified error
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Wrap classifies an existing error
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// KindOf returns the kind of the first classified error in err's chain.
// Unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsClassified reports whether err carries a Kind
func IsClassified(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// ExitCode returns the exit status for err, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}

// Is reports whether err is classified as kind
func Is(err error, kind Kind) bool {
	return IsClassified(err) && KindOf(err) == kind
}
