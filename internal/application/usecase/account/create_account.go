// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// MinAccountNameLength is the minimum allowed length for account names.
const MinAccountNameLength = 2

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID uuid.UUID
	Name   string
	Color  string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < MinAccountNameLength {
		return nil, domainerror.ErrInvalidAccountName
	}

	existing, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, account := range existing {
		if strings.EqualFold(account.Name, name) {
			return nil, domainerror.ErrDuplicateAccountName
		}
	}

	account := entity.NewAccount(input.UserID, name, input.Color)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
