package security

import "strings"

// dangerousSequences are removed globally from untrusted string fields before
// they reach resource API calls. Removal is a single sequential pass in this
// order.
var dangerousSequences = []string{";", "'", `"`, `\`, "--", "/*", "*/", "`"}

// SanitizeInput strips the fixed blacklist of unsafe substrings from s and
// trims surrounding whitespace. Deterministic, no side effects. Passwords are
// never sanitized: they pass verbatim to the hasher.
func SanitizeInput(s string) string {
	if s == "" {
		return ""
	}
	for _, seq := range dangerousSequences {
		s = strings.ReplaceAll(s, seq, "")
	}
	return strings.TrimSpace(s)
}
