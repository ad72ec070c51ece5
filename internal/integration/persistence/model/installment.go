package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// InstallmentModel represents the installments table in the database.
type InstallmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Details       string          `gorm:"type:varchar(500)"`
	Cost          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAt        time.Time       `gorm:"not null"`
	Total         int             `gorm:"not null"`
	Remaining     int             `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToEntity converts an InstallmentModel to a domain Installment entity.
func (m *InstallmentModel) ToEntity() *entity.Installment {
	return &entity.Installment{
		ID:            m.ID,
		Name:          m.Name,
		Details:       m.Details,
		Cost:          m.Cost,
		PaidAt:        m.PaidAt,
		Total:         m.Total,
		Remaining:     m.Remaining,
		PaymentMethod: m.PaymentMethod,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InstallmentFromEntity creates an InstallmentModel from a domain Installment entity.
func InstallmentFromEntity(installment *entity.Installment) *InstallmentModel {
	return &InstallmentModel{
		ID:            installment.ID,
		Name:          installment.Name,
		Details:       installment.Details,
		Cost:          installment.Cost,
		PaidAt:        installment.PaidAt,
		Total:         installment.Total,
		Remaining:     installment.Remaining,
		PaymentMethod: installment.PaymentMethod,
		AccountID:     installment.AccountID,
		CategoryID:    installment.CategoryID,
		UserID:        installment.UserID,
		CreatedAt:     installment.CreatedAt,
		UpdatedAt:     installment.UpdatedAt,
	}
}
