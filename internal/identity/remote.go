package identity

import (
	"context"

	"github.com/guardiantix/authkit/internal/logging"
	"github.com/guardiantix/authkit/internal/resource"
	"github.com/guardiantix/authkit/internal/session"
	"github.com/guardiantix/authkit/internal/user"
)

// RemoteResolver verifies the session token against the resource API's
// check-session operation on every request. A revoked or deleted user is
// anonymous on the very next call.
type RemoteResolver struct {
	client resource.Client
	log    logging.Logger
}

func NewRemoteResolver(client resource.Client, log logging.Logger) *RemoteResolver {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &RemoteResolver{client: client, log: log}
}

func (r *RemoteResolver) Resolve(ctx context.Context, sess session.Session) user.User {
	if sess.Token == "" {
		return user.Anonymous()
	}

	check, err := r.client.CheckSession(ctx, sess.Token)
	if err != nil {
		r.log.Warn(ctx, "session check failed, resolving anonymous", "error", err)
		return user.Anonymous()
	}
	if !check.Valid || check.User == nil {
		return user.Anonymous()
	}

	return check.User.ToUser()
}
