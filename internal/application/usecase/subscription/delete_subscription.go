package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// DeleteSubscriptionInput represents the input for subscription deletion.
type DeleteSubscriptionInput struct {
	UserID         uuid.UUID
	SubscriptionID uuid.UUID
}

// DeleteSubscriptionOutput represents the output of subscription deletion.
type DeleteSubscriptionOutput struct{}

// DeleteSubscriptionUseCase deletes a subscription. Deletion is blocked
// while any generated transaction still references the subscription; the
// entries must be removed first so the ledger never holds dangling
// provenance links.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	transactionRepo  adapter.TransactionRepository
}

// NewDeleteSubscriptionUseCase creates a new DeleteSubscriptionUseCase instance.
func NewDeleteSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		transactionRepo:  transactionRepo,
	}
}

// Execute performs the subscription deletion.
func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, input DeleteSubscriptionInput) (*DeleteSubscriptionOutput, error) {
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

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, tx := range transactions {
		if tx.SubscriptionID != nil && *tx.SubscriptionID == subscription.ID {
			return nil, domainerror.NewSubscriptionError(
				domainerror.ErrCodeSubscriptionHasTransactions,
				"subscription has associated transactions",
				domainerror.ErrSubscriptionHasTransactions,
			)
		}
	}

	if err := uc.subscriptionRepo.Delete(ctx, subscription.ID); err != nil {
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	return &DeleteSubscriptionOutput{}, nil
}
