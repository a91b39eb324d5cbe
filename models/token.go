package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a JWT issued by the collaboration platform for one user.
type Token struct {
	// Token is the parsed or freshly signed JWT.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the "sub" claim.
	UserID string `json:"-"`

	// ExpiresAt is the "exp" claim. Zero when the token carries none.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
