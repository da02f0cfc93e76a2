package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by login tokens.
type Claims struct {
	Email string `json:"email"`
	ID    int    `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying JWTs.
type TokenService interface {
	// Issue signs a token for the given user, valid for the configured TTL.
	Issue(email string, id int) (string, error)

	// Verify parses tokenString and fails when it is malformed, badly signed or expired.
	Verify(tokenString string) (*Claims, error)
}
