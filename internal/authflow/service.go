// Package authflow composes the security primitives, the resource API client,
// and the session store into the login, registration, and logout flows.
package authflow

import (
	"context"
	"errors"
	"time"

	"github.com/guardiantix/authkit/internal/access"
	"github.com/guardiantix/authkit/internal/common"
	"github.com/guardiantix/authkit/internal/config"
	"github.com/guardiantix/authkit/internal/identity"
	"github.com/guardiantix/authkit/internal/logging"
	"github.com/guardiantix/authkit/internal/resource"
	"github.com/guardiantix/authkit/internal/security"
	"github.com/guardiantix/authkit/internal/session"
	"github.com/guardiantix/authkit/internal/user"
)

// Human-readable failure messages surfaced to callers. Credential failures
// never leak internal detail.
const (
	msgInvalidCredentials  = "Invalid credentials!"
	msgRegistrationFailed  = "Registration failed!"
	msgPasswordsDoNotMatch = "Passwords do not match!"
	msgUnknownError        = "Unknown error"
)

// Result is the typed outcome of a login or registration flow. Credential
// errors resolve to a Result with a message instead of propagating.
type Result struct {
	User    user.User
	Session session.Session
	Error   string
}

// Success reports whether the flow completed.
func (r Result) Success() bool {
	return r.Error == ""
}

// SessionEstablished reports whether the flow produced a live session.
// Registration can succeed without one when the automatic follow-up login
// fails; the caller must then prompt for a manual login.
func (r Result) SessionEstablished() bool {
	return !r.Session.IsZero()
}

// Service is the auth orchestrator. Construct one at startup and share it;
// it holds no per-request state.
type Service struct {
	client   resource.Client
	sessions session.Store
	resolver identity.Resolver
	ttl      time.Duration
	log      logging.Logger
}

// NewService wires the orchestrator from its collaborators.
func NewService(client resource.Client, sessions session.Store, resolver identity.Resolver, cfg *config.Config, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		client:   client,
		sessions: sessions,
		resolver: resolver,
		ttl:      cfg.SessionTTL,
		log:      log,
	}
}

// Login verifies credentials against the resource API and, on success,
// establishes a session. The identifier may be an email or a username; it is
// sanitized before leaving the process. The password passes through verbatim.
func (s *Service) Login(ctx context.Context, identifier, password string) Result {
	identifier = security.SanitizeInput(identifier)

	resp, err := s.client.Login(ctx, identifier, password)
	if err != nil {
		return Result{Error: loginFailureMessage(err)}
	}

	u := resp.User.ToUser()
	sess := session.New(resp.Token, u, s.ttl)
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.log.Error(ctx, "session save failed", "error", err)
		return Result{Error: msgInvalidCredentials}
	}

	s.log.Info(ctx, "login succeeded", "user_id", u.ID, "role", u.Role)
	return Result{User: u, Session: sess}
}

// Register creates a new user and immediately attempts an automatic login
// with the same credentials. Password mismatch and weak passwords fail before
// any resource API call. The stored credential is hashed here: the resource
// API persists what it receives.
//
// If the follow-up login fails, registration is still reported successful
// with no session; the caller must prompt for a manual login.
func (s *Service) Register(ctx context.Context, username, email, password, confirmPassword string) Result {
	if password != confirmPassword {
		return Result{Error: msgPasswordsDoNotMatch}
	}
	if ok, reason := security.IsPasswordStrong(password); !ok {
		return Result{Error: reason}
	}

	username = security.SanitizeInput(username)
	email = security.SanitizeInput(email)

	hashed, err := security.HashPassword(password)
	if err != nil {
		return Result{Error: msgRegistrationFailed}
	}

	req := resource.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     common.RoleUser,
	}
	if _, err := s.client.CreateUser(ctx, req); err != nil {
		return Result{Error: registrationFailureMessage(err)}
	}

	s.log.Info(ctx, "user registered", "email", email)

	if login := s.Login(ctx, email, password); login.Success() {
		return login
	}

	// Registered but not logged in: success without a session.
	return Result{}
}

// Logout clears the session. Idempotent; always succeeds, even when the
// session is absent or the store is unreachable.
func (s *Service) Logout(ctx context.Context, sess session.Session) {
	if sess.Token == "" {
		return
	}
	if err := s.sessions.Delete(ctx, sess.Token); err != nil {
		s.log.Warn(ctx, "session delete failed", "error", err)
	}
}

// Session fetches the server-side session stored under token. An unknown or
// expired token yields the zero session.
func (s *Service) Session(ctx context.Context, tokenString string) session.Session {
	if tokenString == "" {
		return session.Session{}
	}
	sess, err := s.sessions.Get(ctx, tokenString)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "session lookup failed", "error", err)
		}
		return session.Session{}
	}
	return *sess
}

// CurrentUser resolves the session to a verified identity, or the anonymous
// sentinel when resolution fails for any reason.
func (s *Service) CurrentUser(ctx context.Context, sess session.Session) user.User {
	return s.resolver.Resolve(ctx, sess)
}

// VerifyAdminAccess reports whether the session belongs to an authenticated
// administrator.
func (s *Service) VerifyAdminAccess(ctx context.Context, sess session.Session) bool {
	return access.RequireAdmin(s.CurrentUser(ctx, sess))
}

// loginFailureMessage derives the user-visible login failure text. A reply
// from the resource API contributes its error detail; a transport failure
// falls back to the generic message.
func loginFailureMessage(err error) string {
	var apiErr *resource.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.Message
		if detail == "" {
			detail = msgUnknownError
		}
		return "Login failed: " + detail
	}
	return msgInvalidCredentials
}

func registrationFailureMessage(err error) string {
	var apiErr *resource.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.Message
		if detail == "" {
			detail = msgUnknownError
		}
		return "Registration failed: " + detail
	}
	return msgRegistrationFailed
}
