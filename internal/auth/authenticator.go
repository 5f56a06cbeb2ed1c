package auth

import (
	"context"

	"github.com/alumnifc/clubledger/internal/models"
)

// Authenticator verifies operator credentials.
// This abstraction allows swapping the configured-operator list for another
// credential source without changing the service layer code.
type Authenticator interface {
	// Authenticate returns the operator if the credential matches.
	Authenticate(ctx context.Context, name, credential string) (*models.Operator, error)
}
