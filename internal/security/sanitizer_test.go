package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"clean", "alice@example.com", "alice@example.com"},
		{"injection attempt", "O'Brien; DROP TABLE --", "OBrien DROP TABLE"},
		{"quotes and backslash", `a"b\c`, "abc"},
		{"comment markers", "x/*y*/z", "xyz"},
		{"backtick", "na`me", "name"},
		{"whitespace trimmed", "  bob  ", "bob"},
		{"double dash global", "a--b--c", "abc"},
		{"recombined semicolons", "-;-", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.in))
		})
	}
}
