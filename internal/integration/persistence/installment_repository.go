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

// installmentRepository implements the adapter.InstallmentRepository interface.
type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new installment repository instance.
func NewInstallmentRepository(db *gorm.DB) adapter.InstallmentRepository {
	return &installmentRepository{db: db}
}

// Create creates a new installment plan in the database.
func (r *installmentRepository) Create(ctx context.Context, installment *entity.Installment) error {
	installmentModel := model.InstallmentFromEntity(installment)
	if result := r.db.WithContext(ctx).Create(installmentModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an installment plan by its ID.
func (r *installmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	var installmentModel model.InstallmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&installmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInstallmentNotFound
		}
		return nil, result.Error
	}
	return installmentModel.ToEntity(), nil
}

// FindByUser retrieves all installment plans for a given user.
func (r *installmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Installment, error) {
	var installmentModels []model.InstallmentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&installmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	installments := make([]*entity.Installment, len(installmentModels))
	for i, im := range installmentModels {
		installments[i] = im.ToEntity()
	}
	return installments, nil
}

// Save persists changes to an existing installment plan.
func (r *installmentRepository) Save(ctx context.Context, installment *entity.Installment) error {
	installmentModel := model.InstallmentFromEntity(installment)
	if result := r.db.WithContext(ctx).Save(installmentModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateOccurrence creates the occurrence transaction and persists the
// plan's decremented remaining counter in a single database transaction, so
// a crash can never leave an occurrence without its counter update.
func (r *installmentRepository) CreateOccurrence(ctx context.Context, installment *entity.Installment, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(model.TransactionFromEntity(transaction)); result.Error != nil {
			return result.Error
		}
		if result := tx.Save(model.InstallmentFromEntity(installment)); result.Error != nil {
			return result.Error
		}
		return nil
	})
}

// Delete removes an installment plan from the database.
func (r *installmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if result := r.db.WithContext(ctx).Delete(&model.InstallmentModel{}, "id = ?", id); result.Error != nil {
		return result.Error
	}
	return nil
}
