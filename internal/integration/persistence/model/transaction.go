package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. The
// nullable SubscriptionID/InstallmentID columns carry the provenance link of
// generated entries; manual entries leave both NULL.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Details        string          `gorm:"type:varchar(500)"`
	Date           time.Time       `gorm:"not null;index"`
	Type           string          `gorm:"type:varchar(10);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentMethod  string          `gorm:"type:varchar(50)"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SubscriptionID *uuid.UUID      `gorm:"type:uuid;index"`
	InstallmentID  *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		Name:           m.Name,
		Details:        m.Details,
		Date:           m.Date,
		Type:           entity.TransactionType(m.Type),
		Amount:         m.Amount,
		CategoryID:     m.CategoryID,
		AccountID:      m.AccountID,
		PaymentMethod:  m.PaymentMethod,
		UserID:         m.UserID,
		SubscriptionID: m.SubscriptionID,
		InstallmentID:  m.InstallmentID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             transaction.ID,
		Name:           transaction.Name,
		Details:        transaction.Details,
		Date:           transaction.Date,
		Type:           string(transaction.Type),
		Amount:         transaction.Amount,
		CategoryID:     transaction.CategoryID,
		AccountID:      transaction.AccountID,
		PaymentMethod:  transaction.PaymentMethod,
		UserID:         transaction.UserID,
		SubscriptionID: transaction.SubscriptionID,
		InstallmentID:  transaction.InstallmentID,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}
