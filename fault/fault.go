package fault

import (
	"fmt"
	"net/http"
	"strings"
)

// State is a machine-readable result state. The set is closed: handlers map
// any state they do not recognize to an internal error response.
type State string

const (
	// StateSuccess marks a successful result body. It never appears on an Error.
	StateSuccess State = "success"

	// StateRequest is caller-correctable: bad input, name conflicts, unknown
	// identity.
	StateRequest State = "requestError"

	// StateServerConfig is operator-correctable: a missing or malformed
	// provider registration.
	StateServerConfig State = "serverConfigurationError"

	// StateCommitFailed is an unexpected failure while persisting credentials.
	// The identity registry is left unmodified.
	StateCommitFailed State = "serverAuthCommitFailed"

	// StateFailed is a well-formed request whose credentials did not match.
	StateFailed State = "failed"
)

// Error is the structured failure result used throughout the identity
// subsystem. It implements error so it can travel through ordinary Go
// plumbing, and it marshals directly as a response body.
type Error struct {
	// State tags the failure with one of the enumerated states.
	State State `json:"state"`
	// Reason is a human-readable explanation.
	Reason string `json:"reason"`
	// Fields lists offending field values where applicable (e.g. every
	// rejected function name), not just the first.
	Fields []string `json:"fields,omitempty"`
	// Cause is the underlying error, if any. Never serialized.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.State, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.State, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus maps the state to a transport status code. States without an
// explicit mapping are treated as unexpected (500).
func (e *Error) HTTPStatus() int {
	switch e.State {
	case StateRequest:
		return http.StatusBadRequest
	case StateFailed:
		return http.StatusForbidden
	case StateServerConfig, StateCommitFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Request creates a caller-correctable error.
func Request(reason string) *Error {
	return &Error{State: StateRequest, Reason: reason}
}

// Requestf creates a caller-correctable error with a formatted reason.
func Requestf(format string, args ...any) *Error {
	return &Error{State: StateRequest, Reason: fmt.Sprintf(format, args...)}
}

// RequestFields creates a caller-correctable error naming every offending
// value.
func RequestFields(reason string, fields []string) *Error {
	return &Error{
		State:  StateRequest,
		Reason: fmt.Sprintf("%s: %s", reason, strings.Join(fields, ", ")),
		Fields: fields,
	}
}

// ServerConfig creates an operator-correctable error.
func ServerConfig(reason string) *Error {
	return &Error{State: StateServerConfig, Reason: reason}
}

// CommitFailed wraps a provider commit failure. The cause is retained for
// logging but never serialized to the caller.
func CommitFailed(cause error) *Error {
	return &Error{
		State:  StateCommitFailed,
		Reason: "failed to commit authentication details",
		Cause:  cause,
	}
}

// AuthFailed creates a credential-mismatch error.
func AuthFailed(reason string) *Error {
	if reason == "" {
		reason = "authentication failed"
	}
	return &Error{State: StateFailed, Reason: reason}
}
