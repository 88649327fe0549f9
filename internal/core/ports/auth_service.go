package ports

import (
	"context"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// AuthService issues, revokes and resolves opaque bearer sessions.
type AuthService interface {
	// Login authenticates by email and password. An unknown email and a wrong
	// password both fail with domain.ErrInvalidCredentials so the caller
	// cannot tell which part was wrong.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes every session carrying the token; revoking an unknown
	// token still succeeds.
	Logout(ctx context.Context, token string) error
	// Resolve maps a bearer token to its actor, failing with
	// domain.ErrUnauthenticated on a missing, unknown or expired token.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
