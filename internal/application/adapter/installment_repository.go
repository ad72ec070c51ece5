// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// InstallmentRepository defines the interface for installment persistence operations.
type InstallmentRepository interface {
	// Create creates a new installment plan in the database.
	Create(ctx context.Context, installment *entity.Installment) error

	// FindByID retrieves an installment plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error)

	// FindByUser retrieves all installment plans for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Installment, error)

	// Save persists changes to an existing installment plan.
	Save(ctx context.Context, installment *entity.Installment) error

	// CreateOccurrence creates the given transaction and persists the plan's
	// decremented remaining counter in a single storage transaction, so an
	// occurrence can never be written without its counter update.
	CreateOccurrence(ctx context.Context, installment *entity.Installment, transaction *entity.Transaction) error

	// Delete removes an installment plan from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
