package adapters

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// googleAuthService implements adapter.GoogleAuthService against the Google
// userinfo endpoint. The client-side OAuth flow hands us an access token; we
// resolve it server-side so a forged token never reaches the user store.
type googleAuthService struct{}

// NewGoogleAuthService creates a new Google auth service instance.
func NewGoogleAuthService() adapter.GoogleAuthService {
	return &googleAuthService{}
}

// ValidateAccessToken resolves a Google access token into the owner's profile.
func (s *googleAuthService) ValidateAccessToken(ctx context.Context, accessToken string) (*entity.GoogleProfile, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	service, err := googleoauth.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth client: %w", err)
	}

	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("userinfo response carries no email")
	}

	return &entity.GoogleProfile{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
