// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
	NotBefore time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateAccessToken signs a token for subject valid from now for duration.
	GenerateAccessToken(subject string, duration time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	// Tokens without exp or nbf are rejected.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
