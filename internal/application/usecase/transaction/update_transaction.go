package transaction

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

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged. Provenance links are immutable.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Name          *string
	Details       *string
	Date          *time.Time
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	CategoryID    *uuid.UUID
	AccountID     *uuid.UUID
	PaymentMethod *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if tx.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < MinTransactionNameLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionName,
				fmt.Sprintf("transaction name must be at least %d characters long", MinTransactionNameLength),
				domainerror.ErrInvalidTransactionName,
			)
		}
		tx.Name = name
	}
	if input.Details != nil {
		if len(*input.Details) > MaxDetailsLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionDetailsLong,
				fmt.Sprintf("transaction details cannot exceed %d characters", MaxDetailsLength),
				domainerror.ErrTransactionDetailsTooLong,
			)
		}
		tx.Details = *input.Details
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Type != nil {
		if *input.Type != entity.TransactionTypeIncome && *input.Type != entity.TransactionTypeExpense {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be INCOME or EXPENSE",
				domainerror.ErrInvalidTransactionType,
			)
		}
		tx.Type = *input.Type
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		tx.Amount = *input.Amount
	}
	if input.CategoryID != nil {
		tx.CategoryID = *input.CategoryID
	}
	if input.AccountID != nil {
		tx.AccountID = *input.AccountID
	}
	if input.PaymentMethod != nil {
		tx.PaymentMethod = *input.PaymentMethod
	}
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
