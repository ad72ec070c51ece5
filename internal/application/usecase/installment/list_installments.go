package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// ListInstallmentsInput represents the input for installment listing.
type ListInstallmentsInput struct {
	UserID uuid.UUID
}

// ListInstallmentsOutput represents the output of installment listing.
type ListInstallmentsOutput struct {
	Installments []*entity.Installment
}

// ListInstallmentsUseCase lists every installment plan of one user.
type ListInstallmentsUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewListInstallmentsUseCase creates a new ListInstallmentsUseCase instance.
func NewListInstallmentsUseCase(installmentRepo adapter.InstallmentRepository) *ListInstallmentsUseCase {
	return &ListInstallmentsUseCase{installmentRepo: installmentRepo}
}

// Execute performs the listing.
func (uc *ListInstallmentsUseCase) Execute(ctx context.Context, input ListInstallmentsInput) (*ListInstallmentsOutput, error) {
	installments, err := uc.installmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	return &ListInstallmentsOutput{Installments: installments}, nil
}
