// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence operations.
type SubscriptionRepository interface {
	// Create creates a new subscription in the database.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindByUser retrieves all subscriptions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// Save persists changes to an existing subscription.
	Save(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes a subscription from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
