package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	validation := NewValidationError("expectedSalary", "expectedSalary must be a whole number")
	wrappedNotFound := fmt.Errorf("error updating student: %w", ErrStudentNotFound)
	storage := errors.New("connection refused")

	assert.True(t, IsValidation(validation))
	assert.False(t, IsNotFound(validation))
	assert.Equal(t, "expectedSalary must be a whole number", validation.Error())

	assert.True(t, IsNotFound(wrappedNotFound))
	assert.False(t, IsValidation(wrappedNotFound))

	assert.True(t, IsValidation(ErrInvalidStudentID))
	assert.False(t, IsValidation(storage))
	assert.False(t, IsNotFound(storage))
}

func TestCustomError_Field(t *testing.T) {
	var custom *CustomError
	err := fmt.Errorf("create: %w", NewValidationError("firstName", "firstName is required"))

	if assert.True(t, errors.As(err, &custom)) {
		assert.Equal(t, "firstName", custom.Field)
	}
}
