// Package transaction contains transaction-related use cases.
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

const (
	// MinTransactionNameLength is the minimum allowed length for transaction names.
	MinTransactionNameLength = 3
	// MaxDetailsLength is the maximum allowed length for the details field.
	MaxDetailsLength = 500
)

// CreateTransactionInput represents the input for transaction creation.
// Manually recorded entries never carry provenance links; those are set only
// by the recurring generation engine.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Name          string
	Details       string
	Date          time.Time
	Type          entity.TransactionType
	Amount        decimal.Decimal
	CategoryID    uuid.UUID
	AccountID     uuid.UUID
	PaymentMethod string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < MinTransactionNameLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionName,
			fmt.Sprintf("transaction name must be at least %d characters long", MinTransactionNameLength),
			domainerror.ErrInvalidTransactionName,
		)
	}
	if len(input.Details) > MaxDetailsLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDetailsLong,
			fmt.Sprintf("transaction details cannot exceed %d characters", MaxDetailsLength),
			domainerror.ErrTransactionDetailsTooLong,
		)
	}
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be INCOME or EXPENSE",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if err := uc.checkOwnership(ctx, input.UserID, input.CategoryID, input.AccountID); err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(
		input.UserID, name, input.Details, input.Date,
		input.Type, input.Amount,
		input.CategoryID, input.AccountID, input.PaymentMethod,
	)
	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}

// checkOwnership verifies the referenced category and account exist and
// belong to the user.
func (uc *CreateTransactionUseCase) checkOwnership(ctx context.Context, userID, categoryID, accountID uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}
	if category.UserID != userID {
		return domainerror.ErrCategoryNotFound
	}

	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}
	if account.UserID != userID {
		return domainerror.ErrAccountNotFound
	}
	return nil
}
