// Package identity turns a session into a verified User or the anonymous
// sentinel. Two strategies exist with materially different trust models:
// RemoteResolver re-validates against the resource API on every request and
// so honors server-side revocation; SessionResolver trusts locally held
// session fields after validating the token signature and expiry locally.
// The strategy is chosen once at startup via config.
package identity

import (
	"context"

	"github.com/guardiantix/authkit/internal/config"
	"github.com/guardiantix/authkit/internal/logging"
	"github.com/guardiantix/authkit/internal/resource"
	"github.com/guardiantix/authkit/internal/session"
	"github.com/guardiantix/authkit/internal/token"
	"github.com/guardiantix/authkit/internal/user"
)

// Resolver produces a verified identity from a session. Implementations
// never fail: an absent or empty session, and any resolution error, yield
// the anonymous User.
type Resolver interface {
	Resolve(ctx context.Context, sess session.Session) user.User
}

// NewResolver selects the resolver implementation named by mode
// (config.ResolverModeRemote or config.ResolverModeSession). Unknown modes
// fall back to the remote strategy, the safer of the two.
func NewResolver(mode string, client resource.Client, validator *token.Validator, log logging.Logger) Resolver {
	if mode == config.ResolverModeSession {
		return NewSessionResolver(validator, log)
	}
	return NewRemoteResolver(client, log)
}
