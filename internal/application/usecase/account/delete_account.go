package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct{}

// DeleteAccountUseCase deletes an account. Deletion is blocked while any
// transaction still references the account.
type DeleteAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository, transactionRepo adapter.TransactionRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.UserID != input.UserID {
		return nil, domainerror.ErrAccountNotFound
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, tx := range transactions {
		if tx.AccountID == account.ID {
			return nil, domainerror.ErrAccountHasTransactions
		}
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{}, nil
}
