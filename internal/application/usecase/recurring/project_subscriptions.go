package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// subscriptionHorizonMonths is how far ahead of "now" subscription
// occurrences are pre-generated.
const subscriptionHorizonMonths = 3

// ProjectSubscriptionsInput represents the input for subscription projection.
// Now is the reference instant for the run; passing it explicitly keeps runs
// reproducible under retries and in tests.
type ProjectSubscriptionsInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// ProjectSubscriptionsOutput reports how many entries the run materialized.
type ProjectSubscriptionsOutput struct {
	Created int
}

// ProjectSubscriptionsUseCase walks every subscription of one user forward
// from its last generated transaction (or its anchor date) and materializes
// the ledger entries that should exist between now and the look-ahead
// horizon.
//
// The projector only looks forward: occurrences dated on or before now are
// skipped rather than backfilled, except the anchor itself which seeds the
// cursor un-advanced when no transaction was ever generated. Because each
// run resumes from the latest generated entry, re-running with no elapsed
// time creates nothing.
type ProjectSubscriptionsUseCase struct {
	transactionRepo  adapter.TransactionRepository
	subscriptionRepo adapter.SubscriptionRepository
}

// NewProjectSubscriptionsUseCase creates a new ProjectSubscriptionsUseCase instance.
func NewProjectSubscriptionsUseCase(
	transactionRepo adapter.TransactionRepository,
	subscriptionRepo adapter.SubscriptionRepository,
) *ProjectSubscriptionsUseCase {
	return &ProjectSubscriptionsUseCase{
		transactionRepo:  transactionRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the projection for one user.
func (uc *ProjectSubscriptionsUseCase) Execute(ctx context.Context, input ProjectSubscriptionsInput) (*ProjectSubscriptionsOutput, error) {
	if input.Now.IsZero() {
		input.Now = time.Now().UTC()
	}
	horizon := addMonthsClamped(input.Now, subscriptionHorizonMonths)

	subscriptions, err := uc.subscriptionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	if len(subscriptions) == 0 {
		return &ProjectSubscriptionsOutput{}, nil
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	output := &ProjectSubscriptionsOutput{}

	for _, subscription := range subscriptions {
		// Resume from the latest generated entry; otherwise the anchor date
		// itself is the first occurrence.
		cursor := subscription.PaidAt
		if last := latestSubscriptionTransaction(transactions, subscription.ID); last != nil {
			cursor = NextPaymentDate(last.Date, subscription.Recurrence)
		}

		for !cursor.After(horizon) {
			if cursor.After(input.Now) {
				occurrence := entity.NewTransaction(
					subscription.UserID,
					subscription.Name,
					subscription.Details,
					cursor,
					entity.TransactionTypeExpense,
					subscription.Cost,
					subscription.CategoryID,
					subscription.AccountID,
					subscription.PaymentMethod,
				)
				occurrence.SubscriptionID = &subscription.ID

				if err := uc.transactionRepo.Create(ctx, occurrence); err != nil {
					return nil, fmt.Errorf("failed to create subscription occurrence: %w", err)
				}
				output.Created++
			}

			cursor = NextPaymentDate(cursor, subscription.Recurrence)
		}
	}

	if output.Created > 0 {
		slog.Debug("Projected subscription occurrences",
			"userID", input.UserID,
			"created", output.Created,
		)
	}

	return output, nil
}
