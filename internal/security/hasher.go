// Package security provides the credential-verification primitives of the
// auth layer: password hashing and verification, input sanitization, and the
// password strength policy. All functions are pure apart from the random salt
// drawn by HashPassword.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/guardiantix/authkit/internal/common"
)

// hashAlgorithm tags hashes produced by HashPassword. Stored credentials
// without this prefix are treated as legacy plaintext (see VerifyPassword).
const hashAlgorithm = "sha256"

const hashPrefix = hashAlgorithm + "$"

// saltSize is the number of random bytes per salt; hex-encoding doubles it
// in the stored representation.
const saltSize = 16

// HashPassword turns a plaintext password into a storable representation of
// the form "sha256$<salt>$<digest>". A fresh random salt is drawn on every
// call, so two hashes of the same password differ. Empty passwords are
// rejected with common.ErrInvalidInput.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", common.ErrInvalidInput
	}

	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(b)

	return hashPrefix + salt + "$" + digest(password, salt), nil
}

// VerifyPassword checks a plaintext attempt against a stored representation.
// It never fails on malformed input: any parse failure yields false.
//
// Stored values without the "sha256$" prefix are compared directly as legacy
// plaintext credentials, kept for records that predate hashing.
func VerifyPassword(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}

	if !strings.HasPrefix(stored, hashPrefix) {
		return equal(password, stored)
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		return false
	}
	algorithm, salt, storedDigest := parts[0], parts[1], parts[2]
	if algorithm != hashAlgorithm {
		return false
	}

	return equal(digest(password, salt), storedDigest)
}

func digest(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
