// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurrenceType represents how often a subscription charges.
type RecurrenceType string

const (
	RecurrenceWeekly   RecurrenceType = "WEEKLY"
	RecurrenceBiweekly RecurrenceType = "BIWEEKLY"
	RecurrenceMonthly  RecurrenceType = "MONTHLY"
	RecurrenceYearly   RecurrenceType = "YEARLY"
)

// ValidRecurrenceType reports whether the given value is one of the fixed
// recurrence kinds.
func ValidRecurrenceType(r RecurrenceType) bool {
	switch r {
	case RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Subscription represents a recurring payment definition. PaidAt is the
// anchor date: the first occurrence when no transaction has been generated
// yet.
type Subscription struct {
	ID            uuid.UUID
	Name          string
	Details       string
	Cost          decimal.Decimal // Invariant: > 0
	Recurrence    RecurrenceType
	PaidAt        time.Time
	PaymentMethod string
	CategoryID    uuid.UUID
	AccountID     uuid.UUID
	UserID        uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(
	userID uuid.UUID,
	name string,
	details string,
	cost decimal.Decimal,
	recurrence RecurrenceType,
	paidAt time.Time,
	paymentMethod string,
	categoryID uuid.UUID,
	accountID uuid.UUID,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:            uuid.New(),
		Name:          name,
		Details:       details,
		Cost:          cost,
		Recurrence:    recurrence,
		PaidAt:        paidAt,
		PaymentMethod: paymentMethod,
		CategoryID:    categoryID,
		AccountID:     accountID,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
