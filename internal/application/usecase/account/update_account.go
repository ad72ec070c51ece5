package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Name      *string
	Color     *string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.UserID != input.UserID {
		return nil, domainerror.ErrAccountNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < MinAccountNameLength {
			return nil, domainerror.ErrInvalidAccountName
		}

		siblings, err := uc.accountRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, sibling := range siblings {
			if sibling.ID != account.ID && strings.EqualFold(sibling.Name, name) {
				return nil, domainerror.ErrDuplicateAccountName
			}
		}
		account.Name = name
	}
	if input.Color != nil {
		account.Color = *input.Color
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
