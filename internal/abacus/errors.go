package abacus

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes errors returned by the engine packages.
type ErrorKind string

const (
	// InvalidInput indicates the caller violated an argument contract
	// (bead counts out of range, non-positive operands, unknown kinds).
	InvalidInput ErrorKind = "INVALID_INPUT"
)

// InputError reports a contract violation at the engine boundary.
type InputError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewInputError creates an InvalidInput error for the named field.
func NewInputError(field, format string, args ...any) *InputError {
	return &InputError{
		Kind:    InvalidInput,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidInput returns true if err wraps an InvalidInput error.
func IsInvalidInput(err error) bool {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Kind == InvalidInput
	}
	return false
}
