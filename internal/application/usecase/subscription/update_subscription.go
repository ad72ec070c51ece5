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

// UpdateSubscriptionInput represents the input for subscription update. Nil
// fields are left unchanged.
type UpdateSubscriptionInput struct {
	UserID         uuid.UUID
	SubscriptionID uuid.UUID
	Name           *string
	Details        *string
	Cost           *decimal.Decimal
	Recurrence     *entity.RecurrenceType
	PaidAt         *time.Time
	PaymentMethod  *string
	CategoryID     *uuid.UUID
	AccountID      *uuid.UUID
}

// UpdateSubscriptionOutput represents the output of subscription update.
type UpdateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// UpdateSubscriptionUseCase handles subscription update logic. Changing the
// schedule (cost, recurrence or anchor date) is blocked while generated
// transactions dated in the future still exist, because those entries were
// derived from the old schedule.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	transactionRepo  adapter.TransactionRepository
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	transactionRepo adapter.TransactionRepository,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		transactionRepo:  transactionRepo,
	}
}

// Execute performs the subscription update.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*UpdateSubscriptionOutput, error) {
	subscription, err := uc.subscriptionRepo.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if subscription.UserID != input.UserID {
		return nil, domainerror.NewSubscriptionError(
			domainerror.ErrCodeSubscriptionNotFound,
			"subscription not found",
			domainerror.ErrSubscriptionNotFound,
		)
	}

	now := time.Now().UTC()

	if input.Cost != nil || input.Recurrence != nil || input.PaidAt != nil {
		hasFuture, err := uc.hasFutureTransactions(ctx, subscription, now)
		if err != nil {
			return nil, err
		}
		if hasFuture {
			return nil, domainerror.NewSubscriptionError(
				domainerror.ErrCodeSubscriptionFutureConflict,
				"cannot change the schedule while future transactions exist",
				domainerror.ErrSubscriptionHasFutureTransactions,
			)
		}
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}

		siblings, err := uc.subscriptionRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}
		for _, sibling := range siblings {
			if sibling.ID != subscription.ID && strings.EqualFold(sibling.Name, name) {
				return nil, domainerror.NewSubscriptionError(
					domainerror.ErrCodeDuplicateSubscriptionName,
					"subscription with this name already exists",
					domainerror.ErrDuplicateSubscriptionName,
				)
			}
		}
		subscription.Name = name
	}
	if input.Details != nil {
		if err := validateDetails(*input.Details); err != nil {
			return nil, err
		}
		subscription.Details = *input.Details
	}
	if input.Cost != nil {
		if err := validateCost(*input.Cost); err != nil {
			return nil, err
		}
		subscription.Cost = *input.Cost
	}
	if input.Recurrence != nil {
		if err := validateRecurrence(*input.Recurrence); err != nil {
			return nil, err
		}
		subscription.Recurrence = *input.Recurrence
	}
	if input.PaidAt != nil {
		if err := validateAnchor(*input.PaidAt, now); err != nil {
			return nil, err
		}
		subscription.PaidAt = *input.PaidAt
	}
	if input.PaymentMethod != nil {
		subscription.PaymentMethod = *input.PaymentMethod
	}
	if input.CategoryID != nil {
		subscription.CategoryID = *input.CategoryID
	}
	if input.AccountID != nil {
		subscription.AccountID = *input.AccountID
	}
	subscription.UpdatedAt = now

	if err := uc.subscriptionRepo.Save(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &UpdateSubscriptionOutput{Subscription: subscription}, nil
}

func (uc *UpdateSubscriptionUseCase) hasFutureTransactions(ctx context.Context, subscription *entity.Subscription, now time.Time) (bool, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, subscription.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, tx := range transactions {
		if tx.SubscriptionID != nil && *tx.SubscriptionID == subscription.ID && tx.Date.After(now) {
			return true, nil
		}
	}
	return false, nil
}
