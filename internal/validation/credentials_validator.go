package validation

const (
	// PasswordMinLength is the shortest acceptable password
	PasswordMinLength = 6
	// PasswordMaxLength is the longest acceptable password
	PasswordMaxLength = 30
)

// CredentialsValidator validates registration and login payloads.
// Checks run in declaration order and stop at the first failing field.
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// ValidateRegistration validates a registration payload: email required and
// syntactically valid, password required with length 6-30.
func (cv *CredentialsValidator) ValidateRegistration(email, password string) error {
	if !cv.validator.IsNonEmptyString(email) {
		return NewRequiredError("email")
	}
	if !cv.validator.IsValidEmail(email) {
		return NewInvalidFormatError("email", email, "email address")
	}
	if !cv.validator.IsNonEmptyString(password) {
		return NewRequiredError("password")
	}
	if !cv.validator.IsValidStringLength(password, PasswordMinLength, PasswordMaxLength) {
		return NewInvalidLengthError("password", nil, PasswordMinLength, PasswordMaxLength)
	}
	return nil
}

// ValidateLogin checks that both login fields are present. Format rules are
// deliberately looser than registration: an unknown email fails lookup anyway.
func (cv *CredentialsValidator) ValidateLogin(email, password string) error {
	if !cv.validator.IsNonEmptyString(email) || !cv.validator.IsNonEmptyString(password) {
		return NewFieldError("email", ErrorTypeRequired, "Email and password are required", nil)
	}
	return nil
}
