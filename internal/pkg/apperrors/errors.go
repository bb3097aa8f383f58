package apperrors

import (
	"errors"
	"fmt"
)

// Error classes. Every failure that reaches a handler is one of these, or a storage failure.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound  = fmt.Errorf("student %w", ErrResourceNotFound)
	ErrInvalidStudentID = fmt.Errorf("%w: invalid student ID format", ErrValidationFailed)
)

// NewValidationError creates a validation failure carrying a field name and reason
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsNotFound reports whether err means the addressed record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
