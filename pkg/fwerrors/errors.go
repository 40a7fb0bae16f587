// Package fwerrors classifies the error taxonomy used across the
// firewall access-domain engine (InvalidRange, IncompatibleKinds,
// InvalidRequest, ModelNotFound, Transient) and maps it onto RPC/HTTP
// behavior: InvalidRange and IncompatibleKinds are programmer errors
// that propagate unrecovered; InvalidRequest and ModelNotFound become
// HTTP status codes; Transient is retried with bounded exponential
// backoff before surfacing as a stream error.
package fwerrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/accessdomain/fwengine/pkg/modelmanager"
	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

// InvalidRequestError marks an RPC call missing required metadata
// (e.g. the "handle" query parameter).
type InvalidRequestError struct {
	Reason string
}

// NewInvalidRequestError instantiates an InvalidRequestError.
func NewInvalidRequestError(reason string) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason}
}

// Error implements the standard error interface.
func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// TransientError wraps a retryable failure from the Model Manager or
// downstream I/O.
type TransientError struct {
	Cause error
}

// NewTransientError instantiates a TransientError.
func NewTransientError(cause error) *TransientError {
	return &TransientError{Cause: cause}
}

// Error implements the standard error interface.
func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure: %v", e.Cause)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *TransientError) Unwrap() error { return e.Cause }

// StatusCode maps an error to the HTTP status code the RPC shell
// should return. InvalidRange and IncompatibleKinds indicate programmer
// or data errors rather than client faults (a malformed rule yielded by
// the Model Manager, for instance, reaches this function as an
// InvalidRange through the access stream), so both are treated as 500s.
func StatusCode(err error) int {
	switch {
	case errors.As(err, new(*InvalidRequestError)):
		return http.StatusBadRequest
	case errors.As(err, new(*modelmanager.ModelNotFoundError)):
		return http.StatusNotFound
	case errors.As(err, new(*TransientError)):
		return http.StatusServiceUnavailable
	case errors.As(err, new(*rangealgebra.InvalidRangeError)):
		return http.StatusInternalServerError
	case errors.As(err, new(*rangealgebra.IncompatibleKindsError)):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// IsTransient reports whether err (or something it wraps) is a
// TransientError.
func IsTransient(err error) bool {
	return errors.As(err, new(*TransientError))
}
