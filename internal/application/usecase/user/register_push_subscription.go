package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
)

// RegisterPushSubscriptionInput represents the input for push registration.
// Subscription is the serialized Web Push subscription JSON produced by the
// browser.
type RegisterPushSubscriptionInput struct {
	UserID       uuid.UUID
	Subscription string
}

// RegisterPushSubscriptionOutput represents the output of push registration.
type RegisterPushSubscriptionOutput struct{}

// RegisterPushSubscriptionUseCase stores the user's Web Push subscription so
// payment reminders can reach the browser.
type RegisterPushSubscriptionUseCase struct {
	userRepo adapter.UserRepository
}

// NewRegisterPushSubscriptionUseCase creates a new RegisterPushSubscriptionUseCase instance.
func NewRegisterPushSubscriptionUseCase(userRepo adapter.UserRepository) *RegisterPushSubscriptionUseCase {
	return &RegisterPushSubscriptionUseCase{userRepo: userRepo}
}

// Execute performs the registration. An empty subscription clears the stored
// one (unsubscribe).
func (uc *RegisterPushSubscriptionUseCase) Execute(ctx context.Context, input RegisterPushSubscriptionInput) (*RegisterPushSubscriptionOutput, error) {
	if input.Subscription != "" && !json.Valid([]byte(input.Subscription)) {
		return nil, fmt.Errorf("push subscription is not valid JSON")
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.PushSubscription = input.Subscription
	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store push subscription: %w", err)
	}

	return &RegisterPushSubscriptionOutput{}, nil
}
