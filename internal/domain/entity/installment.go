// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment limits enforced at creation time.
const (
	MinInstallmentCount = 2
	MaxInstallmentCount = 48
)

// Installment represents a fixed-term deferred purchase paid in monthly
// parts. Remaining counts down from Total as occurrences are materialized;
// the invariant 0 <= Remaining <= Total always holds.
type Installment struct {
	ID            uuid.UUID
	Name          string
	Details       string
	Cost          decimal.Decimal // Full purchase cost, split across Total occurrences
	PaidAt        time.Time
	Total         int
	Remaining     int
	PaymentMethod string
	AccountID     uuid.UUID
	CategoryID    uuid.UUID
	UserID        uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInstallment creates a new Installment entity with the full count
// remaining.
func NewInstallment(
	userID uuid.UUID,
	name string,
	details string,
	cost decimal.Decimal,
	paidAt time.Time,
	total int,
	paymentMethod string,
	accountID uuid.UUID,
	categoryID uuid.UUID,
) *Installment {
	now := time.Now().UTC()

	return &Installment{
		ID:            uuid.New(),
		Name:          name,
		Details:       details,
		Cost:          cost,
		PaidAt:        paidAt,
		Total:         total,
		Remaining:     total,
		PaymentMethod: paymentMethod,
		AccountID:     accountID,
		CategoryID:    categoryID,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NextOccurrence returns the 1-indexed number of the next occurrence to be
// generated.
func (i *Installment) NextOccurrence() int {
	return i.Total - i.Remaining + 1
}
