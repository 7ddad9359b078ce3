package errors

import "fmt"

// Usage creates a usage error
func Usage(reason string) *Error {
	return New(KindUsage, reason)
}

// ConfigInvalid creates a configuration error
func ConfigInvalid(path string, err error) *Error {
	return Wrap(err, KindConfig, fmt.Sprintf("invalid configuration %s", path)).
		WithDetail("path", path)
}

// ConnectionFailed creates a connection error
func ConnectionFailed(socketPath string, err error) *Error {
	msg := "cannot connect to window manager"
	if socketPath != "" {
		msg = fmt.Sprintf("cannot connect to window manager at %s", socketPath)
	}
	return Wrap(err, KindConnection, msg).
		WithDetail("socket", socketPath)
}

// QueryFailed creates a query error for a failed or inconsistent read
func QueryFailed(query string, err error) *Error {
	return Wrap(err, KindQuery, fmt.Sprintf("%s failed", query)).
		WithDetail("query", query)
}

// Inconsistent creates a query error for disagreement between the workspace list and the tree
func Inconsistent(reason string) *Error {
	return New(KindQuery, fmt.Sprintf("inconsistent window manager state: %s", reason))
}

// CommandFailed creates a command error
func CommandFailed(command string, err error) *Error {
	return Wrap(err, KindCommand, fmt.Sprintf("command %q failed", command)).
		WithDetail("command", command)
}
