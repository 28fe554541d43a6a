// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finance-tracker/bookkeeper/internal/application/adapter"
)

const tokenIssuer = "bookkeeper"

// ErrMissingNotBefore is returned for tokens that carry no nbf claim.
var ErrMissingNotBefore = errors.New("token is missing the nbf claim")

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a new HMAC token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return NewTokenServiceWithClock(secret, time.Now)
}

// NewTokenServiceWithClock creates a token service that reads the current
// time from now when issuing and validating tokens.
func NewTokenServiceWithClock(secret string, now func() time.Time) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		now:    now,
	}
}

// GenerateAccessToken generates a signed access token.
func (s *tokenService) GenerateAccessToken(subject string, duration time.Duration) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
		Subject:   subject,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.NotBefore == nil {
		return nil, ErrMissingNotBefore
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
		NotBefore: claims.NotBefore.Time,
	}, nil
}
