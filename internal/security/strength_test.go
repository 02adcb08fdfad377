package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPasswordStrong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		password   string
		wantOK     bool
		wantReason string
	}{
		{"too short", "short", false, "Password must be at least 8 characters"},
		{"no uppercase", "alllower1", false, "Password must contain uppercase letter"},
		{"no lowercase", "ALLUPPER1", false, "Password must contain lowercase letter"},
		{"no digit", "NoDigitsHere", false, "Password must contain number"},
		{"strong", "Valid1Pass", true, "Password is strong"},
		{"length checked first", "aB1", false, "Password must be at least 8 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := IsPasswordStrong(tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
