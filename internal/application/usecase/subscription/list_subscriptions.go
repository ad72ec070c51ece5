package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// ListSubscriptionsInput represents the input for subscription listing.
type ListSubscriptionsInput struct {
	UserID uuid.UUID
}

// ListSubscriptionsOutput represents the output of subscription listing.
type ListSubscriptionsOutput struct {
	Subscriptions []*entity.Subscription
}

// ListSubscriptionsUseCase lists every subscription of one user.
type ListSubscriptionsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subscriptionRepo adapter.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{subscriptionRepo: subscriptionRepo}
}

// Execute performs the listing.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, input ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	subscriptions, err := uc.subscriptionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return &ListSubscriptionsOutput{Subscriptions: subscriptions}, nil
}
