package session

import "context"

// Store persists sessions server-side, keyed by token. Implementations must
// treat an expired session as absent on read.
type Store interface {
	// Save persists the session. Saving under a token that already exists
	// replaces the previous session.
	Save(ctx context.Context, s Session) error

	// Get returns the unexpired session stored under token, or
	// common.ErrorNotFound when no such session exists.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes the session stored under token. Deleting an absent
	// session is not an error.
	Delete(ctx context.Context, token string) error
}
