package models

import "github.com/golang-jwt/jwt/v5"

// Token is the parsed panel session token. The ticketing platform signs a JWT
// for every panel session; the subject claim identifies the operator.
type Token struct {
	jwt.RegisteredClaims

	// Token is the parsed jwt.Token object, populated after validation.
	Token *jwt.Token `json:"-"`

	// SignedString is the raw signed token string.
	SignedString string `json:"-"`

	// OperatorID is the subject claim extracted after validation.
	OperatorID string `json:"-"`
}
