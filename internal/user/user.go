// Package user defines the verified-identity model produced by the identity
// resolver and consumed by the access policy.
package user

import (
	"github.com/guardiantix/authkit/internal/common"
)

// User is an identity record. A User with an empty ID is the anonymous
// sentinel representing an unauthenticated caller. Users are created by the
// resource API on registration and are read-only to this layer afterwards.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	JoinDate string `json:"join_date,omitempty"`
}

// Anonymous returns the unauthenticated sentinel.
func Anonymous() User {
	return User{}
}

// IsAuthenticated reports whether the user has a persisted identity.
func (u User) IsAuthenticated() bool {
	return u.ID != ""
}

// HasRole reports whether the user is authenticated and carries the role.
func (u User) HasRole(role string) bool {
	return u.IsAuthenticated() && u.Role == role
}

// IsAdmin reports whether the user is an authenticated administrator.
func (u User) IsAdmin() bool {
	return u.HasRole(common.RoleAdmin)
}
