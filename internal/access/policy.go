// Package access decides what a resolved identity may do. Policy checks are
// pure predicates; callers deny or redirect on a false result, never crash.
package access

import (
	"github.com/guardiantix/authkit/internal/common"
	"github.com/guardiantix/authkit/internal/user"
)

// RequireRole reports whether u is authenticated and holds the given role.
// The anonymous sentinel never passes.
func RequireRole(u user.User, role string) bool {
	return u.IsAuthenticated() && u.Role == role
}

// RequireAdmin reports whether u is an authenticated administrator.
func RequireAdmin(u user.User) bool {
	return RequireRole(u, common.RoleAdmin)
}

// RequireUser reports whether u is an authenticated regular user.
func RequireUser(u user.User) bool {
	return RequireRole(u, common.RoleUser)
}
