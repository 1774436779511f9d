package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the server. Role carries the caller
// role that access rules are evaluated against.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"token"`

	// Role is the caller role extracted from the "role" claim.
	Role Role `json:"role"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
