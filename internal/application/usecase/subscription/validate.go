// Package subscription contains subscription-related use cases.
package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

const (
	// MinSubscriptionNameLength is the minimum allowed length for subscription names.
	MinSubscriptionNameLength = 3
	// MaxDetailsLength is the maximum allowed length for the details field.
	MaxDetailsLength = 500
	// MaxActiveSubscriptions caps how many subscriptions one user can hold.
	MaxActiveSubscriptions = 10
	// MaxAnchorAge is how far in the past the anchor payment date may lie.
	MaxAnchorAge = 365 * 24 * time.Hour
)

// minCost is the smallest chargeable amount.
var minCost = decimal.New(1, -2) // 0.01

func validateName(name string) error {
	if len(strings.TrimSpace(name)) < MinSubscriptionNameLength {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidSubscriptionName,
			fmt.Sprintf("subscription name must be at least %d characters long", MinSubscriptionNameLength),
			domainerror.ErrInvalidSubscriptionName,
		)
	}
	return nil
}

func validateDetails(details string) error {
	if len(details) > MaxDetailsLength {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeSubscriptionDetailsTooLong,
			fmt.Sprintf("subscription details cannot exceed %d characters", MaxDetailsLength),
			domainerror.ErrSubscriptionDetailsTooLong,
		)
	}
	return nil
}

func validateCost(cost decimal.Decimal) error {
	if cost.LessThan(minCost) {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidSubscriptionCost,
			"subscription cost must be at least 0.01",
			domainerror.ErrInvalidSubscriptionCost,
		)
	}
	return nil
}

func validateRecurrence(recurrence entity.RecurrenceType) error {
	if !entity.ValidRecurrenceType(recurrence) {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidRecurrence,
			fmt.Sprintf("invalid recurrence type %q", recurrence),
			domainerror.ErrInvalidRecurrence,
		)
	}
	return nil
}

// validateAnchor checks the anchor payment date: not in the future and no
// more than one year in the past, so a new subscription never floods the
// ledger with historical entries.
func validateAnchor(paidAt, now time.Time) error {
	if paidAt.After(now) {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeFuturePaymentDate,
			"payment date cannot be in the future",
			domainerror.ErrFuturePaymentDate,
		)
	}
	if paidAt.Before(now.Add(-MaxAnchorAge)) {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodePaymentDateTooOld,
			"payment date cannot be more than 1 year in the past",
			domainerror.ErrPaymentDateTooOld,
		)
	}
	return nil
}
