package validation

import (
	"regexp"
	"strings"
)

// Validator provides common validation utilities
type Validator struct {
	emailRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		emailRegex: regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range.
// A max of 0 means no upper bound.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(s)
	if max == 0 {
		return length >= min
	}
	return length >= min && length <= max
}

// IsValidEmail checks if a string is syntactically a valid email address
func (v *Validator) IsValidEmail(email string) bool {
	return v.emailRegex.MatchString(email)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
