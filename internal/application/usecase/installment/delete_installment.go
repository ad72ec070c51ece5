package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// DeleteInstallmentInput represents the input for installment plan deletion.
type DeleteInstallmentInput struct {
	UserID        uuid.UUID
	InstallmentID uuid.UUID
}

// DeleteInstallmentOutput represents the output of installment plan deletion.
type DeleteInstallmentOutput struct{}

// DeleteInstallmentUseCase deletes an installment plan. Deletion is blocked
// while any generated occurrence still references the plan.
type DeleteInstallmentUseCase struct {
	installmentRepo adapter.InstallmentRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeleteInstallmentUseCase creates a new DeleteInstallmentUseCase instance.
func NewDeleteInstallmentUseCase(
	installmentRepo adapter.InstallmentRepository,
	transactionRepo adapter.TransactionRepository,
) *DeleteInstallmentUseCase {
	return &DeleteInstallmentUseCase{
		installmentRepo: installmentRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the installment plan deletion.
func (uc *DeleteInstallmentUseCase) Execute(ctx context.Context, input DeleteInstallmentInput) (*DeleteInstallmentOutput, error) {
	installment, err := uc.installmentRepo.FindByID(ctx, input.InstallmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load installment: %w", err)
	}
	if installment.UserID != input.UserID {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentNotFound,
			"installment not found",
			domainerror.ErrInstallmentNotFound,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, tx := range transactions {
		if tx.InstallmentID != nil && *tx.InstallmentID == installment.ID {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodeInstallmentHasTransactions,
				"installment has associated transactions",
				domainerror.ErrInstallmentHasTransactions,
			)
		}
	}

	if err := uc.installmentRepo.Delete(ctx, installment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete installment: %w", err)
	}

	return &DeleteInstallmentOutput{}, nil
}
