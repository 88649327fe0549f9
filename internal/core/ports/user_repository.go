package ports

import (
	"context"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// UserRepository defines persistence for actor accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository resolves stored role records. Roles are seeded at
// deployment; a missing role is a configuration fault, not user error.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
