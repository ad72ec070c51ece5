package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for account listing.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of account listing.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase lists every account of one user.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute performs the listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return &ListAccountsOutput{Accounts: accounts}, nil
}
