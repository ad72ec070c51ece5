// Package installment contains installment-plan use cases.
package installment

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

const (
	// MinInstallmentNameLength is the minimum allowed length for plan names.
	MinInstallmentNameLength = 3
	// MaxDetailsLength is the maximum allowed length for the details field.
	MaxDetailsLength = 500
	// MaxActiveInstallments caps how many unfinished plans one user can hold.
	MaxActiveInstallments = 10
	// MaxAnchorAge is how far in the past the first payment date may lie.
	MaxAnchorAge = 365 * 24 * time.Hour
)

// minCost is the smallest chargeable amount.
var minCost = decimal.New(1, -2) // 0.01

func validateName(name string) error {
	if len(strings.TrimSpace(name)) < MinInstallmentNameLength {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidInstallmentName,
			fmt.Sprintf("installment name must be at least %d characters long", MinInstallmentNameLength),
			domainerror.ErrInvalidInstallmentName,
		)
	}
	return nil
}

func validateDetails(details string) error {
	if len(details) > MaxDetailsLength {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentDetailsTooLong,
			fmt.Sprintf("installment details cannot exceed %d characters", MaxDetailsLength),
			domainerror.ErrInstallmentDetailsTooLong,
		)
	}
	return nil
}

// validateCost checks the full purchase cost and the per-occurrence split:
// the total must be chargeable and so must every part once divided.
func validateCost(cost decimal.Decimal, total int) error {
	if cost.LessThan(minCost) {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidInstallmentCost,
			"installment cost must be at least 0.01",
			domainerror.ErrInvalidInstallmentCost,
		)
	}
	part := cost.DivRound(decimal.NewFromInt(int64(total)), 2)
	if part.LessThan(minCost) {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentValueTooSmall,
			"each installment value must be at least 0.01",
			domainerror.ErrInstallmentValueTooSmall,
		)
	}
	return nil
}

func validateTotal(total int) error {
	if total < entity.MinInstallmentCount {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeTooFewInstallments,
			fmt.Sprintf("total installments must be at least %d", entity.MinInstallmentCount),
			domainerror.ErrTooFewInstallments,
		)
	}
	if total > entity.MaxInstallmentCount {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeTooManyInstallments,
			fmt.Sprintf("total installments cannot exceed %d", entity.MaxInstallmentCount),
			domainerror.ErrTooManyInstallments,
		)
	}
	return nil
}

func validateAnchor(paidAt, now time.Time) error {
	if paidAt.After(now) {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentFutureDate,
			"first payment date cannot be in the future",
			domainerror.ErrFuturePaymentDate,
		)
	}
	if paidAt.Before(now.Add(-MaxAnchorAge)) {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeInstallmentDateTooOld,
			"first payment date cannot be more than 1 year in the past",
			domainerror.ErrPaymentDateTooOld,
		)
	}
	return nil
}
