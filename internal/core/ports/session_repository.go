package ports

import (
	"context"
	"time"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// SessionRepository defines persistence for bearer sessions. The store is the
// single source of truth; expiry is checked lazily at resolve time.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	// DeleteByToken removes every session carrying the token. Deleting an
	// absent token is not an error (logout is idempotent).
	DeleteByToken(ctx context.Context, token string) error
}

// SessionCache is an optional read-through cache in front of the session
// store. A read miss (or any read failure) falls back to the repository; the
// cache is never authoritative. Delete is the exception: a failed
// invalidation would leave a revoked token resolvable until its TTL, so the
// error must reach the caller.
type SessionCache interface {
	Get(ctx context.Context, token string) (*domain.User, bool)
	Set(ctx context.Context, token string, user *domain.User, ttl time.Duration)
	Delete(ctx context.Context, token string) error
}
