// Package resource provides the typed client for the resource API — the
// external data-store-backed service that owns user rows and credential
// records. The auth layer never talks to the database directly.
package resource

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/guardiantix/authkit/internal/user"
)

// UserPayload is the user object shape returned by the resource API.
type UserPayload struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
	Phone    string      `json:"phone"`
	JoinDate string      `json:"join_date"`
}

// ToUser converts the payload to the identity model.
func (p UserPayload) ToUser() user.User {
	return user.User{
		ID:       p.ID.String(),
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role,
		Phone:    p.Phone,
		JoinDate: p.JoinDate,
	}
}

// LoginResponse is the success payload of the login operation.
type LoginResponse struct {
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
	Message string      `json:"message"`
}

// CreateUserRequest carries a registration to the resource API. Password must
// already be hashed by the caller; the resource API stores it as-is.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// CreateUserResponse is the success payload of the create-user operation.
type CreateUserResponse struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
	Message  string      `json:"message"`
}

// SessionCheck is the payload of the check-session operation.
type SessionCheck struct {
	Valid bool         `json:"valid"`
	User  *UserPayload `json:"user"`
	Error string       `json:"error"`
}

// APIError is a non-success response from the resource API: the HTTP status
// plus the message from the body's "error" field, when parsable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("resource API error: status %d", e.Status)
	}
	return fmt.Sprintf("resource API error: status %d: %s", e.Status, e.Message)
}

// Client defines the resource API operations the auth layer depends on.
//
// All methods honor context cancellation and return either a typed payload,
// an *APIError for a non-success status, or an error wrapping
// common.ErrUpstreamUnavailable when the call itself failed.
type Client interface {
	// Login verifies credentials and returns a signed token plus the user row.
	Login(ctx context.Context, identifier, password string) (*LoginResponse, error)

	// CreateUser registers a new user. Duplicate email and validation
	// failures surface as *APIError with status 400.
	CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error)

	// CheckSession validates a token server-side and returns the associated
	// user when the session is still live.
	CheckSession(ctx context.Context, token string) (*SessionCheck, error)
}
