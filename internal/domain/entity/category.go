// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color assigned to new categories.
const DefaultCategoryColor = "#6366F1"

// Category groups transactions for reporting.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name, color, icon string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
