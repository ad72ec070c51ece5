// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction represents a single ledger entry. Entries derived from a
// subscription or installment plan carry exactly one provenance link back to
// their origin; manually recorded entries carry none.
type Transaction struct {
	ID             uuid.UUID
	Name           string
	Details        string
	Date           time.Time
	Type           TransactionType
	Amount         decimal.Decimal // Always positive; Type carries the direction
	CategoryID     uuid.UUID
	AccountID      uuid.UUID
	PaymentMethod  string
	UserID         uuid.UUID
	SubscriptionID *uuid.UUID // Provenance: generated from a subscription
	InstallmentID  *uuid.UUID // Provenance: generated from an installment plan
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	name string,
	details string,
	date time.Time,
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryID uuid.UUID,
	accountID uuid.UUID,
	paymentMethod string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Name:          name,
		Details:       details,
		Date:          date,
		Type:          transactionType,
		Amount:        amount,
		CategoryID:    categoryID,
		AccountID:     accountID,
		PaymentMethod: paymentMethod,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasProvenance reports whether the transaction was generated from a
// subscription or installment plan.
func (t *Transaction) HasProvenance() bool {
	return t.SubscriptionID != nil || t.InstallmentID != nil
}
