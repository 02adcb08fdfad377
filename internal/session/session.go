// Package session models the per-caller authenticated session and the
// server-side stores that persist it, keyed by token.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/guardiantix/authkit/internal/user"
)

// Session is the ephemeral per-caller state established on login or
// registration. Sessions are never mutated in place: a re-login replaces the
// session wholesale, and logout deletes it.
type Session struct {
	ID        string
	Token     string
	UserID    string
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
	TTL       time.Duration
}

// New builds a fully populated session for the given user and token. All
// identity fields are set together; a session is either complete or absent.
func New(token string, u user.User, ttl time.Duration) Session {
	return Session{
		ID:        uuid.NewString(),
		Token:     token,
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: time.Now(),
		TTL:       ttl,
	}
}

// IsZero reports whether the session is absent (no token, no identity).
func (s Session) IsZero() bool {
	return s.Token == "" && s.UserID == ""
}

// ExpiresAt returns the instant after which the session is no longer valid.
func (s Session) ExpiresAt() time.Time {
	return s.CreatedAt.Add(s.TTL)
}

// IsExpired reports whether the session TTL has elapsed. Absent sessions are
// expired by definition.
func (s Session) IsExpired() bool {
	if s.IsZero() {
		return true
	}
	return time.Now().After(s.ExpiresAt())
}
