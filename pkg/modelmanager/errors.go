package modelmanager

import "fmt"

// ModelNotFoundError is returned by Manager.Get when the requested
// model handle is not known to the Model Manager.
type ModelNotFoundError struct {
	Handle string
}

// NewModelNotFoundError instantiates a ModelNotFoundError.
func NewModelNotFoundError(handle string) *ModelNotFoundError {
	return &ModelNotFoundError{Handle: handle}
}

// Error implements the standard error interface.
func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model manager: handle %q not found", e.Handle)
}
