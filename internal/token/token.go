// Package token mints and validates the signed identity tokens carried by
// sessions and resource API requests (HS256 JWTs).
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/guardiantix/authkit/internal/common"
)

// Claims carries the identity encoded in a token: the registered claims plus
// the user ID and username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Issuer mints signed identity tokens with a process-wide secret key.
// Construct one at startup and pass it by reference.
type Issuer struct {
	secretKey []byte
	validity  time.Duration
}

// NewIssuer builds an Issuer. A zero validity omits the expiry claim: the
// surrounding session TTL governs lifetime in that case.
func NewIssuer(secretKey []byte, validity time.Duration) *Issuer {
	return &Issuer{secretKey: secretKey, validity: validity}
}

// Issue produces a signed token over {user_id, username}.
func (i *Issuer) Issue(userID, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
	}
	if i.validity != 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validity)),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secretKey)
}

// Validator decodes and verifies identity tokens.
type Validator struct {
	secretKey []byte
}

func NewValidator(secretKey []byte) *Validator {
	return &Validator{secretKey: secretKey}
}

// Validate decodes tokenString and returns its claims. A leading "Bearer "
// prefix is stripped before decoding. Failures map to the token error
// taxonomy: common.ErrTokenMissing for an absent token,
// common.ErrTokenExpired when the expiry claim has elapsed, and
// common.ErrTokenInvalid for anything malformed or signed with another key.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, common.BearerPrefix)
	if tokenString == "" {
		return nil, common.ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
