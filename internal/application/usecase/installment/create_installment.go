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

// CreateInstallmentInput represents the input for installment plan creation.
// Cost is the full purchase price; it is split evenly across Total monthly
// occurrences starting at PaidAt.
type CreateInstallmentInput struct {
	UserID        uuid.UUID
	Name          string
	Details       string
	Cost          decimal.Decimal
	PaidAt        time.Time
	Total         int
	PaymentMethod string
	AccountID     uuid.UUID
	CategoryID    uuid.UUID
}

// CreateInstallmentOutput represents the output of installment plan creation.
type CreateInstallmentOutput struct {
	Installment *entity.Installment
}

// CreateInstallmentUseCase handles installment plan creation logic.
type CreateInstallmentUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewCreateInstallmentUseCase creates a new CreateInstallmentUseCase instance.
func NewCreateInstallmentUseCase(installmentRepo adapter.InstallmentRepository) *CreateInstallmentUseCase {
	return &CreateInstallmentUseCase{installmentRepo: installmentRepo}
}

// Execute performs the installment plan creation.
func (uc *CreateInstallmentUseCase) Execute(ctx context.Context, input CreateInstallmentInput) (*CreateInstallmentOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDetails(input.Details); err != nil {
		return nil, err
	}
	if err := validateTotal(input.Total); err != nil {
		return nil, err
	}
	if err := validateCost(input.Cost, input.Total); err != nil {
		return nil, err
	}
	if err := validateAnchor(input.PaidAt, time.Now().UTC()); err != nil {
		return nil, err
	}

	existing, err := uc.installmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	active := 0
	for _, plan := range existing {
		if plan.Remaining > 0 {
			active++
		}
	}
	if active >= MaxActiveInstallments {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentLimitReached,
			fmt.Sprintf("maximum of %d active installments reached", MaxActiveInstallments),
			domainerror.ErrInstallmentLimitReached,
		)
	}

	installment := entity.NewInstallment(
		input.UserID, name, input.Details, input.Cost,
		input.PaidAt, input.Total, input.PaymentMethod,
		input.AccountID, input.CategoryID,
	)
	if err := uc.installmentRepo.Create(ctx, installment); err != nil {
		return nil, fmt.Errorf("failed to create installment: %w", err)
	}

	return &CreateInstallmentOutput{Installment: installment}, nil
}
