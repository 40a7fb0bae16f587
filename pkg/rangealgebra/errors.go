package rangealgebra

import (
	"fmt"
	"log/slog"
)

// InvalidRangeError is returned by constructors and parsers when the
// requested bounds violate a range's invariants (reversed interval,
// out-of-domain port, malformed CIDR or port spec). It indicates
// programmer or caller error and is not meant to be retried.
type InvalidRangeError struct {
	Kind   Kind
	Val    string
	Reason string
}

// NewInvalidRangeError instantiates an InvalidRangeError.
func NewInvalidRangeError(kind Kind, val, reason string) *InvalidRangeError {
	return &InvalidRangeError{Kind: kind, Val: val, Reason: reason}
}

// Error implements the standard error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s range %q: %s", e.Kind, e.Val, e.Reason)
}

// LogValue returns a slog group for structured logging.
func (e *InvalidRangeError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", e.Kind.String()),
		slog.String("val", e.Val),
		slog.String("reason", e.Reason),
	)
}

// IncompatibleKindsError is returned when an algebra operation is given
// operands whose kinds (or, at the Space level, schemas) differ.
type IncompatibleKindsError struct {
	A, B Kind
}

// NewIncompatibleKindsError instantiates an IncompatibleKindsError.
func NewIncompatibleKindsError(a, b Kind) *IncompatibleKindsError {
	return &IncompatibleKindsError{A: a, B: b}
}

// Error implements the standard error interface.
func (e *IncompatibleKindsError) Error() string {
	return fmt.Sprintf("incompatible range kinds: %s vs %s", e.A, e.B)
}

// LogValue returns a slog group for structured logging.
func (e *IncompatibleKindsError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("a", e.A.String()),
		slog.String("b", e.B.String()),
	)
}
