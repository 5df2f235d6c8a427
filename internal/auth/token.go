package auth

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todo-api/internal/errors"
)

// Auth error codes carried on errors.AppError. Clients see the same message
// for both; the codes exist so server-side logs can tell them apart.
const (
	CodeTokenMalformed = "TOKEN_MALFORMED"
	CodeTokenExpired   = "TOKEN_EXPIRED"
)

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed identity tokens.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a token service from the process-wide signing
// secret. An empty secret is a startup error: tokens signed with it could
// never be meaningfully verified.
func NewTokenService(secret string, lifetime time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token signing secret must not be empty")
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// Issue produces a signed token embedding the user id with issued-at and
// expiry claims.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes and validates a presented token, returning the embedded
// user id. Expired tokens and malformed/mis-signed tokens return auth errors
// with distinct codes.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return 0, errors.NewAuthError(CodeTokenExpired, "token has expired", err)
		}
		return 0, errors.NewAuthError(CodeTokenMalformed, "token is malformed or has an invalid signature", err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return 0, errors.NewAuthError(CodeTokenMalformed, "token is malformed or has an invalid signature", nil)
	}

	return claims.UserID, nil
}
