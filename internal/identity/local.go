package identity

import (
	"context"

	"github.com/guardiantix/authkit/internal/common"
	"github.com/guardiantix/authkit/internal/logging"
	"github.com/guardiantix/authkit/internal/session"
	"github.com/guardiantix/authkit/internal/token"
	"github.com/guardiantix/authkit/internal/user"
)

// SessionResolver synthesizes the identity from locally held session fields
// without a resource API round trip. The token signature and expiry are still
// validated locally, so a session without a valid, unexpired token resolves
// to the anonymous User — but server-side revocation is not visible to this
// strategy.
type SessionResolver struct {
	validator *token.Validator
	log       logging.Logger
}

func NewSessionResolver(validator *token.Validator, log logging.Logger) *SessionResolver {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &SessionResolver{validator: validator, log: log}
}

func (r *SessionResolver) Resolve(ctx context.Context, sess session.Session) user.User {
	if sess.UserID == "" || sess.Username == "" {
		return user.Anonymous()
	}
	if sess.IsExpired() {
		return user.Anonymous()
	}

	if _, err := r.validator.Validate(sess.Token); err != nil {
		r.log.Warn(ctx, "session token rejected, resolving anonymous", "error", err)
		return user.Anonymous()
	}

	role := sess.Role
	if role == "" {
		role = common.RoleUser
	}

	return user.User{
		ID:       sess.UserID,
		Username: sess.Username,
		Email:    sess.Email,
		Role:     role,
	}
}
