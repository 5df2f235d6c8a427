package domain

// User represents a registered account in the domain model.
// The password hash is never serialized to clients.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// NewUser creates a new User with the given email and password hash.
func NewUser(email, passwordHash string) User {
	return User{
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.Email != "" && u.PasswordHash != ""
}
