// Package apierror defines the client-facing errors of the API together with
// the HTTP status each one is rendered with.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dtroode/tasktracker-server/internal/validation"
)

// Kind classifies an APIError.
type Kind string

const (
	// KindAuthMissing means the request had no Authorization header.
	KindAuthMissing Kind = "auth_missing"
	// KindAuthEmpty means the header carried no bearer credential.
	KindAuthEmpty Kind = "auth_empty"
	// KindAuthInvalid means the credential did not match the configured token.
	KindAuthInvalid Kind = "auth_invalid"
	// KindAuthServerMisconfigured means the server has no token to check against.
	KindAuthServerMisconfigured Kind = "auth_server_misconfigured"
	// KindValidationFailed means the input broke one or more field rules.
	KindValidationFailed Kind = "validation_failed"
	// KindNotFound covers unknown records and unmatched routes.
	KindNotFound Kind = "not_found"
	// KindNotImplemented covers stub routes and unsupported methods.
	KindNotImplemented Kind = "not_implemented"
	// KindPersistenceFailure means the store failed.
	KindPersistenceFailure Kind = "persistence_failure"
)

// APIError is an error that is safe to render to clients.
type APIError struct {
	Kind     Kind
	HTTPCode int
	Message  string
	Fields   validation.Errors
	Cause    error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an APIError of kind k.
func IsKind(err error, k Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == k
}

// NewErrMissingAuthorizationHeader is returned when no Authorization header is sent.
func NewErrMissingAuthorizationHeader() *APIError {
	return &APIError{Kind: KindAuthMissing, HTTPCode: http.StatusUnauthorized, Message: "Authorization header is required"}
}

// NewErrEmptyAPIToken is returned for a blank header or a bare "Bearer".
func NewErrEmptyAPIToken() *APIError {
	return &APIError{Kind: KindAuthEmpty, HTTPCode: http.StatusUnauthorized, Message: "API token is required"}
}

// NewErrInvalidAPIToken is returned when the credential does not match.
func NewErrInvalidAPIToken() *APIError {
	return &APIError{Kind: KindAuthInvalid, HTTPCode: http.StatusUnauthorized, Message: "Invalid API token"}
}

// NewErrAPITokenNotConfigured is a server fault: no token is configured.
func NewErrAPITokenNotConfigured() *APIError {
	return &APIError{Kind: KindAuthServerMisconfigured, HTTPCode: http.StatusInternalServerError, Message: "API token not configured on server"}
}

// NewErrValidation wraps field errors. The message is the first field message,
// followed by a count of the remaining ones.
func NewErrValidation(fields validation.Errors) *APIError {
	msg := fields.First()
	switch rest := fields.Count() - 1; {
	case rest == 1:
		msg += " (and 1 more error)"
	case rest > 1:
		msg += fmt.Sprintf(" (and %d more errors)", rest)
	}
	return &APIError{Kind: KindValidationFailed, HTTPCode: http.StatusUnprocessableEntity, Message: msg, Fields: fields}
}

// NewErrTaskNotFound is returned for an unknown or malformed task id.
func NewErrTaskNotFound() *APIError {
	return &APIError{Kind: KindNotFound, HTTPCode: http.StatusNotFound, Message: "Task not found"}
}

// NewErrUserNotFound is returned for an unknown or malformed user id.
func NewErrUserNotFound() *APIError {
	return &APIError{Kind: KindNotFound, HTTPCode: http.StatusNotFound, Message: "User not found"}
}

// NewErrRouteNotFound is returned for paths no route matches.
func NewErrRouteNotFound() *APIError {
	return &APIError{Kind: KindNotFound, HTTPCode: http.StatusNotFound, Message: "Route not found"}
}

// NewErrMethodNotAllowed is returned when a path exists but not for the
// request method.
func NewErrMethodNotAllowed() *APIError {
	return &APIError{Kind: KindNotImplemented, HTTPCode: http.StatusMethodNotAllowed, Message: "Method not allowed"}
}

// NewErrNotImplemented is returned by routes that exist but do nothing yet.
func NewErrNotImplemented() *APIError {
	return &APIError{Kind: KindNotImplemented, HTTPCode: http.StatusMethodNotAllowed, Message: "Method not implemented"}
}

// NewErrPersistence reports a storage failure. message is shown to clients,
// cause only when the server is configured to expose it.
func NewErrPersistence(message string, cause error) *APIError {
	return &APIError{Kind: KindPersistenceFailure, HTTPCode: http.StatusInternalServerError, Message: message, Cause: cause}
}
