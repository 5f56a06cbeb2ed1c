package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/alumnifc/clubledger/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid operator or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// OperatorAuthenticator checks passwords against a fixed set of bcrypt
// hashes, typically loaded from auth.operators in the config file.
type OperatorAuthenticator struct {
	operators map[string]string
}

var _ Authenticator = (*OperatorAuthenticator)(nil)

// NewOperatorAuthenticator maps operator name to bcrypt hash.
func NewOperatorAuthenticator(operators map[string]string) *OperatorAuthenticator {
	return &OperatorAuthenticator{operators: operators}
}

// Authenticate verifies the name and password, returning the operator if valid.
func (a *OperatorAuthenticator) Authenticate(_ context.Context, name, credential string) (*models.Operator, error) {
	hash, ok := a.operators[name]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &models.Operator{Name: name, PasswordHash: hash}, nil
}

// HashPassword returns a bcrypt hash suitable for auth.operators.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
