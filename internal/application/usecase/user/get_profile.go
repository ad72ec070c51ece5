// Package user contains user profile use cases.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// GetProfileInput represents the input for profile retrieval.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of profile retrieval.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase loads the authenticated user's profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute performs the profile retrieval.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	return &GetProfileOutput{User: user}, nil
}
