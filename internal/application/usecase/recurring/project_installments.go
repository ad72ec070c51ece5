package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// ProjectInstallmentsInput represents the input for installment projection.
type ProjectInstallmentsInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// ProjectInstallmentsOutput reports how many occurrences the run materialized.
type ProjectInstallmentsOutput struct {
	Created int
}

// ProjectInstallmentsUseCase materializes due occurrences of one user's
// installment plans. Unlike subscriptions the walk is bounded by the plan's
// remaining counter rather than a forward horizon, and the cadence is always
// monthly. Every generated occurrence decrements the counter in the same
// storage transaction that creates the entry, so the total number of entries
// ever generated for a plan can never exceed its total and the counter can
// never go negative.
type ProjectInstallmentsUseCase struct {
	installmentRepo adapter.InstallmentRepository
	transactionRepo adapter.TransactionRepository
}

// NewProjectInstallmentsUseCase creates a new ProjectInstallmentsUseCase instance.
func NewProjectInstallmentsUseCase(
	installmentRepo adapter.InstallmentRepository,
	transactionRepo adapter.TransactionRepository,
) *ProjectInstallmentsUseCase {
	return &ProjectInstallmentsUseCase{
		installmentRepo: installmentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the projection for one user.
func (uc *ProjectInstallmentsUseCase) Execute(ctx context.Context, input ProjectInstallmentsInput) (*ProjectInstallmentsOutput, error) {
	if input.Now.IsZero() {
		input.Now = time.Now().UTC()
	}

	installments, err := uc.installmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load installments: %w", err)
	}
	if len(installments) == 0 {
		return &ProjectInstallmentsOutput{}, nil
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	output := &ProjectInstallmentsOutput{}

	for _, installment := range installments {
		if installment.Remaining == 0 {
			continue
		}

		cursor := installment.PaidAt
		if last := latestInstallmentTransaction(transactions, installment.ID); last != nil {
			cursor = NextPaymentDate(last.Date, entity.RecurrenceMonthly)
		}

		for installment.Remaining > 0 && !cursor.After(input.Now) {
			sequence := installment.NextOccurrence()

			occurrence := entity.NewTransaction(
				installment.UserID,
				fmt.Sprintf("%s (%d/%d)", installment.Name, sequence, installment.Total),
				installment.Details,
				cursor,
				entity.TransactionTypeExpense,
				occurrenceAmount(installment.Cost, installment.Total, sequence),
				installment.CategoryID,
				installment.AccountID,
				installment.PaymentMethod,
			)
			occurrence.InstallmentID = &installment.ID

			installment.Remaining--
			installment.UpdatedAt = time.Now().UTC()

			if err := uc.installmentRepo.CreateOccurrence(ctx, installment, occurrence); err != nil {
				return nil, fmt.Errorf("failed to create installment occurrence: %w", err)
			}
			output.Created++

			cursor = NextPaymentDate(cursor, entity.RecurrenceMonthly)
		}
	}

	if output.Created > 0 {
		slog.Debug("Projected installment occurrences",
			"userID", input.UserID,
			"created", output.Created,
		)
	}

	return output, nil
}

// occurrenceAmount returns the amount of the 1-indexed occurrence. Every
// occurrence charges cost/total rounded to cents; the final one absorbs the
// rounding remainder so the occurrences sum back to the exact plan cost.
func occurrenceAmount(cost decimal.Decimal, total, occurrence int) decimal.Decimal {
	base := cost.DivRound(decimal.NewFromInt(int64(total)), 2)
	if occurrence == total {
		return cost.Sub(base.Mul(decimal.NewFromInt(int64(total - 1))))
	}
	return base
}
