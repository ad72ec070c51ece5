// Package auth contains authentication use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// AuthenticateUserInput represents the input for Google sign-in.
type AuthenticateUserInput struct {
	AccessToken string
}

// AuthenticateUserOutput represents the output of a successful sign-in.
type AuthenticateUserOutput struct {
	Token string
	User  *entity.User
}

// AuthenticateUserUseCase signs a user in with a Google access token. The
// token is resolved to a Google profile; a user record is created on first
// sign-in and refreshed from the profile afterwards.
type AuthenticateUserUseCase struct {
	googleAuth   adapter.GoogleAuthService
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewAuthenticateUserUseCase creates a new AuthenticateUserUseCase instance.
func NewAuthenticateUserUseCase(
	googleAuth adapter.GoogleAuthService,
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		googleAuth:   googleAuth,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the sign-in.
func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, input AuthenticateUserInput) (*AuthenticateUserOutput, error) {
	profile, err := uc.googleAuth.ValidateAccessToken(ctx, input.AccessToken)
	if err != nil {
		slog.Warn("Google token validation failed", "error", err)
		return nil, domainerror.ErrInvalidGoogleToken
	}

	user, err := uc.userRepo.FindByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		// Keep the profile fields current with Google.
		if user.Name != profile.Name || user.Avatar != profile.Picture {
			user.Name = profile.Name
			user.Avatar = profile.Picture
			if err := uc.userRepo.Save(ctx, user); err != nil {
				return nil, fmt.Errorf("failed to refresh user profile: %w", err)
			}
		}
	case errors.Is(err, domainerror.ErrUserNotFound):
		user = entity.NewUser(profile.Name, profile.Email, profile.Picture)
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		slog.Info("New user registered", "userID", user.ID)
	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := uc.tokenService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &AuthenticateUserOutput{Token: token, User: user}, nil
}
