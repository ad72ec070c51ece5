package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// CreateSubscriptionInput represents the input for subscription creation.
type CreateSubscriptionInput struct {
	UserID        uuid.UUID
	Name          string
	Details       string
	Cost          decimal.Decimal
	Recurrence    entity.RecurrenceType
	PaidAt        time.Time
	PaymentMethod string
	CategoryID    uuid.UUID
	AccountID     uuid.UUID
}

// CreateSubscriptionOutput represents the output of subscription creation.
type CreateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// CreateSubscriptionUseCase handles subscription creation logic.
type CreateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(subscriptionRepo adapter.SubscriptionRepository) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{subscriptionRepo: subscriptionRepo}
}

// Execute performs the subscription creation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CreateSubscriptionInput) (*CreateSubscriptionOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDetails(input.Details); err != nil {
		return nil, err
	}
	if err := validateCost(input.Cost); err != nil {
		return nil, err
	}
	if err := validateRecurrence(input.Recurrence); err != nil {
		return nil, err
	}
	if err := validateAnchor(input.PaidAt, time.Now().UTC()); err != nil {
		return nil, err
	}

	existing, err := uc.subscriptionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if len(existing) >= MaxActiveSubscriptions {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeSubscriptionLimitReached,
			fmt.Sprintf("maximum of %d active subscriptions reached", MaxActiveSubscriptions),
			domainerror.ErrSubscriptionLimitReached,
		)
	}
	for _, sub := range existing {
		if strings.EqualFold(sub.Name, name) {
			return nil, domainerror.NewSubscriptionError(
				domainerror.ErrCodeDuplicateSubscriptionName,
				"subscription with this name already exists",
				domainerror.ErrDuplicateSubscriptionName,
			)
		}
	}

	subscription := entity.NewSubscription(
		input.UserID, name, input.Details, input.Cost,
		input.Recurrence, input.PaidAt, input.PaymentMethod,
		input.CategoryID, input.AccountID,
	)
	if err := uc.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CreateSubscriptionOutput{Subscription: subscription}, nil
}
