// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// TokenClaims represents the validated claims of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateToken issues a signed session token for the given user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken parses and validates a session token.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// GoogleAuthService defines the interface for validating Google OAuth tokens.
type GoogleAuthService interface {
	// ValidateAccessToken resolves a Google access token into the owner's profile.
	ValidateAccessToken(ctx context.Context, accessToken string) (*entity.GoogleProfile, error)
}
