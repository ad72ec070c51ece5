// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a place money lives (wallet, bank account, card).
type Account struct {
	ID        uuid.UUID
	Name      string
	Color     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name, color string) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
