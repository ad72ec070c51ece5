package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Details       string          `gorm:"type:varchar(500)"`
	Cost          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Recurrence    string          `gorm:"type:varchar(10);not null"`
	PaidAt        time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:            m.ID,
		Name:          m.Name,
		Details:       m.Details,
		Cost:          m.Cost,
		Recurrence:    entity.RecurrenceType(m.Recurrence),
		PaidAt:        m.PaidAt,
		PaymentMethod: m.PaymentMethod,
		CategoryID:    m.CategoryID,
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:            subscription.ID,
		Name:          subscription.Name,
		Details:       subscription.Details,
		Cost:          subscription.Cost,
		Recurrence:    string(subscription.Recurrence),
		PaidAt:        subscription.PaidAt,
		PaymentMethod: subscription.PaymentMethod,
		CategoryID:    subscription.CategoryID,
		AccountID:     subscription.AccountID,
		UserID:        subscription.UserID,
		CreatedAt:     subscription.CreatedAt,
		UpdatedAt:     subscription.UpdatedAt,
	}
}
