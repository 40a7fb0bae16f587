package accessspace

import (
	"fmt"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

// SchemaMismatchError is the Space/SpaceSet-level counterpart to
// rangealgebra's IncompatibleKindsError: it fires when two spaces (or
// space-sets) are compared or combined but their dimension schemas
// don't match pairwise.
type SchemaMismatchError struct {
	A, B []rangealgebra.Kind
}

// NewSchemaMismatchError instantiates a SchemaMismatchError.
func NewSchemaMismatchError(a, b []rangealgebra.Kind) *SchemaMismatchError {
	return &SchemaMismatchError{A: a, B: b}
}

// Error implements the standard error interface.
func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("incompatible space schemas: %v vs %v", e.A, e.B)
}
