package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
	"github.com/carlosmateus/maintenance-system/internal/core/ports"
)

const tokenBytes = 30

// AuthService implements login, logout and token resolution over a
// store-backed session table. Tokens are opaque random strings, so a logout
// revokes immediately; there is nothing for a client to verify offline.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	cache    ports.SessionCache // optional, may be nil
	ttl      time.Duration
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	cache ports.SessionCache,
	ttl time.Duration,
	log zerolog.Logger,
) *AuthService {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	return &AuthService{users: users, sessions: sessions, cache: cache, ttl: ttl, log: log}
}

// Login authenticates by email and password and issues a fresh session.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("login: persist session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("session issued")

	return token, user, nil
}

// Logout revokes all sessions carrying the token. Revoking a token that no
// longer exists still succeeds. The cache entry is invalidated before the
// store row goes away, and an invalidation failure aborts the logout: the
// session row survives, so the caller can retry instead of believing a still
// cached token was revoked.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, token); err != nil {
			return fmt.Errorf("logout: invalidate cache: %w", err)
		}
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Resolve maps a bearer token to its actor. Expiry is checked lazily here;
// no background sweep exists.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, token); ok {
			return user, nil
		}
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	now := time.Now().UTC()
	if !session.ValidAt(now) {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		s.log.Warn().Str("user_id", session.UserID).Msg("session references missing user")
		return nil, domain.ErrUnauthenticated
	}

	if s.cache != nil {
		s.cache.Set(ctx, token, user, session.ExpiresAt.Sub(now))
	}

	return user, nil
}

// generateToken returns a high-entropy opaque token, hex-encoded.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
