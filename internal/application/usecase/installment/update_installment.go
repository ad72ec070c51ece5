package installment

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

// UpdateInstallmentInput represents the input for installment plan update.
// Nil fields are left unchanged.
type UpdateInstallmentInput struct {
	UserID        uuid.UUID
	InstallmentID uuid.UUID
	Name          *string
	Details       *string
	Cost          *decimal.Decimal
	PaidAt        *time.Time
	Total         *int
	PaymentMethod *string
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
}

// UpdateInstallmentOutput represents the output of installment plan update.
type UpdateInstallmentOutput struct {
	Installment *entity.Installment
}

// UpdateInstallmentUseCase handles installment plan update logic. Changing
// the schedule (cost, total or first payment date) is blocked once any
// occurrence has been generated, because the already-written entries were
// split from the old schedule.
type UpdateInstallmentUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewUpdateInstallmentUseCase creates a new UpdateInstallmentUseCase instance.
func NewUpdateInstallmentUseCase(installmentRepo adapter.InstallmentRepository) *UpdateInstallmentUseCase {
	return &UpdateInstallmentUseCase{installmentRepo: installmentRepo}
}

// Execute performs the installment plan update.
func (uc *UpdateInstallmentUseCase) Execute(ctx context.Context, input UpdateInstallmentInput) (*UpdateInstallmentOutput, error) {
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

	scheduleChange := input.Cost != nil || input.Total != nil || input.PaidAt != nil
	if scheduleChange && installment.Remaining < installment.Total {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentHasTransactions,
			"cannot change the schedule after occurrences have been generated",
			domainerror.ErrInstallmentHasTransactions,
		)
	}

	now := time.Now().UTC()

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		installment.Name = name
	}
	if input.Details != nil {
		if err := validateDetails(*input.Details); err != nil {
			return nil, err
		}
		installment.Details = *input.Details
	}
	if input.Total != nil {
		if err := validateTotal(*input.Total); err != nil {
			return nil, err
		}
		installment.Total = *input.Total
		installment.Remaining = *input.Total
	}
	if input.Cost != nil {
		if err := validateCost(*input.Cost, installment.Total); err != nil {
			return nil, err
		}
		installment.Cost = *input.Cost
	}
	if input.PaidAt != nil {
		if err := validateAnchor(*input.PaidAt, now); err != nil {
			return nil, err
		}
		installment.PaidAt = *input.PaidAt
	}
	if input.PaymentMethod != nil {
		installment.PaymentMethod = *input.PaymentMethod
	}
	if input.AccountID != nil {
		installment.AccountID = *input.AccountID
	}
	if input.CategoryID != nil {
		installment.CategoryID = *input.CategoryID
	}
	installment.UpdatedAt = now

	if err := uc.installmentRepo.Save(ctx, installment); err != nil {
		return nil, fmt.Errorf("failed to update installment: %w", err)
	}

	return &UpdateInstallmentOutput{Installment: installment}, nil
}
