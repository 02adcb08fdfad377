package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guardiantix/authkit/internal/user"
)

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		u    user.User
		want bool
	}{
		{"anonymous", user.Anonymous(), false},
		{"admin", user.User{ID: "1", Role: "admin"}, true},
		{"regular user", user.User{ID: "2", Role: "user"}, false},
		{"admin role without identity", user.User{Role: "admin"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAdmin(tt.u))
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	u := user.User{ID: "1", Role: "user"}
	assert.True(t, RequireRole(u, "user"))
	assert.False(t, RequireRole(u, "admin"))
	assert.False(t, RequireRole(user.Anonymous(), "user"))
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	assert.True(t, RequireUser(user.User{ID: "3", Role: "user"}))
	assert.False(t, RequireUser(user.User{ID: "1", Role: "admin"}))
}
