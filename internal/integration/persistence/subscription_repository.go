package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
	"github.com/coinkeeper/backend/internal/integration/persistence/model"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create creates a new subscription in the database.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	if result := r.db.WithContext(ctx).Create(subscriptionModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a subscription by its ID.
func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subscriptionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, result.Error
	}
	return subscriptionModel.ToEntity(), nil
}

// FindByUser retrieves all subscriptions for a given user.
func (r *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []model.SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subscriptionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i, sm := range subscriptionModels {
		subscriptions[i] = sm.ToEntity()
	}
	return subscriptions, nil
}

// Save persists changes to an existing subscription.
func (r *subscriptionRepository) Save(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	if result := r.db.WithContext(ctx).Save(subscriptionModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a subscription from the database.
func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if result := r.db.WithContext(ctx).Delete(&model.SubscriptionModel{}, "id = ?", id); result.Error != nil {
		return result.Error
	}
	return nil
}
