package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// Besides the registered claims (iat, exp and optionally iss) it carries the
// authenticated user's identifier and login under the "id" and "login" keys.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the "id_usuario" of the authenticated user.
	UserID int64 `json:"id"`

	// Login is the login of the authenticated user.
	Login string `json:"login"`
}

// Token wraps a JWT session token together with the identity it carries.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "id" claim.
	UserID int64 `json:"-"`

	// Login is the owner login taken from the "login" claim.
	Login string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
