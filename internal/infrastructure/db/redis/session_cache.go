package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carlosmateus/maintenance-system/internal/api/metrics"
	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// SessionCache is a read-through cache in front of the session store.
// Key format: session:<token>. The TTL is capped by the session's remaining
// validity, so an entry can never outlive the session it mirrors. The store
// stays authoritative: any read failure is treated as a miss.
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache wraps the given Redis client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

func (c *SessionCache) Get(ctx context.Context, token string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(token)).Bytes()
	if err != nil {
		metrics.SessionCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		metrics.SessionCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.SessionCacheTotal.WithLabelValues("hit").Inc()
	return &user, true
}

func (c *SessionCache) Set(ctx context.Context, token string, user *domain.User, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(token), raw, ttl).Err()
}

// Delete removes the cached entry. Unlike reads, a failure here is surfaced:
// swallowing it would leave a revoked token resolvable until the entry's TTL.
func (c *SessionCache) Delete(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, c.key(token)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *SessionCache) key(token string) string {
	return "session:" + token
}
