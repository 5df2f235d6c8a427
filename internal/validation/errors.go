package validation

import (
	"fmt"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError carries the first failing field check. Validation stops at
// the first failure, so there is always exactly one field error to report.
type ValidationError struct {
	Err FieldError
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	return ve.Err.Error()
}

// GetUserFriendlyMessage returns the human-readable message for the failing field
func (ve *ValidationError) GetUserFriendlyMessage() string {
	return ve.Err.Message
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// NewFieldError creates a ValidationError for a single failing field
func NewFieldError(field string, errorType ValidationErrorType, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Err: FieldError{
			Field:   field,
			Type:    errorType,
			Message: message,
			Value:   value,
		},
	}
}

// NewRequiredError creates a required-field error
func NewRequiredError(field string) *ValidationError {
	return NewFieldError(field, ErrorTypeRequired, fmt.Sprintf("%s is required", field), nil)
}

// NewInvalidFormatError creates an invalid-format error
func NewInvalidFormatError(field string, value interface{}, expectedFormat string) *ValidationError {
	message := fmt.Sprintf("%s must be a valid %s", field, expectedFormat)
	return NewFieldError(field, ErrorTypeInvalidFormat, message, value)
}

// NewInvalidLengthError creates an invalid-length error
func NewInvalidLengthError(field string, value interface{}, min, max int) *ValidationError {
	var message string
	if min > 0 && max > 0 {
		message = fmt.Sprintf("%s must be between %d and %d characters long", field, min, max)
	} else if min > 0 {
		message = fmt.Sprintf("%s must be at least %d characters long", field, min)
	} else if max > 0 {
		message = fmt.Sprintf("%s must be at most %d characters long", field, max)
	} else {
		message = fmt.Sprintf("%s has invalid length", field)
	}
	return NewFieldError(field, ErrorTypeInvalidLength, message, value)
}

// NewInvalidValueError creates an invalid-value error
func NewInvalidValueError(field string, value interface{}, reason string) *ValidationError {
	message := fmt.Sprintf("%s has invalid value: %s", field, reason)
	return NewFieldError(field, ErrorTypeInvalidValue, message, value)
}
