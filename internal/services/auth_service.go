package services

import (
	"context"

	"todo-api/internal/auth"
	"todo-api/internal/domain"
	"todo-api/internal/errors"
	"todo-api/internal/repository/sqlite"
	"todo-api/internal/validation"
)

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	repo      sqlite.Repository
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenService
	mapper    *domain.Mapper
	validator *validation.CredentialsValidator
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo sqlite.Repository, hasher *auth.PasswordHasher, tokens *auth.TokenService) AuthService {
	return &authServiceImpl{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		mapper:    domain.NewMapper(),
		validator: validation.NewCredentialsValidator(),
	}
}

// Register validates the credentials, rejects duplicate emails, hashes the
// password and creates the user. The plaintext password is never stored.
func (s *authServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if err := s.validator.ValidateRegistration(email, password); err != nil {
		return nil, wrapValidation(err)
	}

	// Reject duplicates before hashing; the UNIQUE constraint on the email
	// column backs this up against concurrent registrations.
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, errors.NewConflictError("Email already in use", "user")
	} else if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to hash password")
	}

	dbUser := &sqlite.User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.CreateUser(ctx, dbUser); err != nil {
		return nil, err
	}

	domainUser := s.mapper.User.FromDatabase(*dbUser)
	return &domainUser, nil
}

// Login verifies the credentials against the stored hash and issues a signed
// identity token for the user.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return "", wrapValidation(err)
	}

	dbUser, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", errors.NewNotFoundError("User", email).WithContext("reason", "unknown email")
		}
		return "", err
	}

	if !s.hasher.Verify(password, dbUser.PasswordHash) {
		return "", errors.NewAuthError("INVALID_PASSWORD", "Invalid password", nil)
	}

	token, err := s.tokens.Issue(dbUser.ID)
	if err != nil {
		return "", errors.WrapError(err, errors.ErrorTypeDatabase, "failed to issue token")
	}

	return token, nil
}

// wrapValidation converts a validation package error into the app error
// taxonomy, preserving the first-field message for clients.
func wrapValidation(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(validationErr.GetUserFriendlyMessage(), validationErr)
	}
	return errors.NewValidationError(err.Error(), err)
}
