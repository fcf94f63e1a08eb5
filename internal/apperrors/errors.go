package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the acting user is not permitted to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrConflict indicates the entity changed since it was read; callers
// should re-fetch and retry rather than resubmit blindly.
var ErrConflict = errors.New("resource state conflict")

// ErrIllegalTransition indicates a status change that is not in the
// transition table, or a mutation not allowed in the current status.
// It reflects business state, not a transient fault, so retrying is pointless.
var ErrIllegalTransition = errors.New("illegal status transition")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Used by the persistence layer for failures that are not business errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
