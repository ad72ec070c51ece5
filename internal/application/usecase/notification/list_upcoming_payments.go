package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// ListUpcomingPaymentsInput represents the input for the upcoming payments query.
type ListUpcomingPaymentsInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// ListUpcomingPaymentsOutput represents the output of the upcoming payments query.
type ListUpcomingPaymentsOutput struct {
	Transactions []*entity.Transaction
}

// ListUpcomingPaymentsUseCase returns the entries due within the reminder
// window for one user. It is the on-demand counterpart of the reminder run:
// same window, same data, but scoped to the requesting user.
type ListUpcomingPaymentsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListUpcomingPaymentsUseCase creates a new use case instance.
func NewListUpcomingPaymentsUseCase(transactionRepo adapter.TransactionRepository) *ListUpcomingPaymentsUseCase {
	return &ListUpcomingPaymentsUseCase{transactionRepo: transactionRepo}
}

// Execute performs the query.
func (uc *ListUpcomingPaymentsUseCase) Execute(ctx context.Context, input ListUpcomingPaymentsInput) (*ListUpcomingPaymentsOutput, error) {
	if input.Now.IsZero() {
		input.Now = time.Now().UTC()
	}
	windowEnd := input.Now.AddDate(0, 0, reminderWindowDays)

	transactions, err := uc.transactionRepo.FindByDateRange(ctx, input.Now, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming transactions: %w", err)
	}

	upcoming := make([]*entity.Transaction, 0)
	for _, tx := range transactions {
		if tx.UserID == input.UserID {
			upcoming = append(upcoming, tx)
		}
	}

	return &ListUpcomingPaymentsOutput{Transactions: upcoming}, nil
}
