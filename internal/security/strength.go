package security

import "unicode"

// minPasswordLength is the minimum accepted password length, in characters.
const minPasswordLength = 8

// IsPasswordStrong validates password strength at registration time. It fails
// closed, reporting the first violated rule: length, then uppercase, then
// lowercase, then digit. Login never applies this check.
func IsPasswordStrong(password string) (bool, string) {
	runes := []rune(password)
	if len(runes) < minPasswordLength {
		return false, "Password must be at least 8 characters"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return false, "Password must contain uppercase letter"
	}
	if !hasLower {
		return false, "Password must contain lowercase letter"
	}
	if !hasDigit {
		return false, "Password must contain number"
	}
	return true, "Password is strong"
}
