package domain

import "time"

// DefaultSessionTTL is the validity window applied to new sessions when no
// other value is configured.
const DefaultSessionTTL = 24 * time.Hour

// Session is an opaque bearer credential issued at login. It has no refresh
// mechanism; once expired the client must log in again.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidAt reports whether the session is still usable at the given instant.
// Expiry is strict: a session whose ExpiresAt equals now is already dead.
func (s *Session) ValidAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
