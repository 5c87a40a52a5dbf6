package auth

import "github.com/golang-jwt/jwt/v5"

// Identity is the authenticated caller. Roles and capabilities are resolved
// from access.Policy, never from the token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// TokenClaims is the JWT issued by the identity proxy in front of the API.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
