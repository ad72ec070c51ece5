package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// In-memory repository fakes shared by the projector tests.

type memTransactionRepo struct {
	transactions []*entity.Transaction
	createErr    error
}

func (r *memTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	stored := *transaction
	r.transactions = append(r.transactions, &stored)
	return nil
}

func (r *memTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *memTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *memTransactionRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *memTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *memTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

// withProvenance returns the stored transactions carrying the given
// subscription or installment link, ordered by date.
func (r *memTransactionRepo) withProvenance(subscriptionID, installmentID *uuid.UUID) []*entity.Transaction {
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if subscriptionID != nil && (tx.SubscriptionID == nil || *tx.SubscriptionID != *subscriptionID) {
			continue
		}
		if installmentID != nil && (tx.InstallmentID == nil || *tx.InstallmentID != *installmentID) {
			continue
		}
		result = append(result, tx)
	}
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Date.Before(result[i].Date) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result
}

type memSubscriptionRepo struct {
	subscriptions []*entity.Subscription
	findErr       error
}

func (r *memSubscriptionRepo) Create(_ context.Context, subscription *entity.Subscription) error {
	r.subscriptions = append(r.subscriptions, subscription)
	return nil
}

func (r *memSubscriptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Subscription, error) {
	for _, sub := range r.subscriptions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, domainerror.ErrSubscriptionNotFound
}

func (r *memSubscriptionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []*entity.Subscription
	for _, sub := range r.subscriptions {
		if sub.UserID == userID {
			result = append(result, sub)
		}
	}
	return result, nil
}

func (r *memSubscriptionRepo) Save(_ context.Context, _ *entity.Subscription) error {
	return nil
}

func (r *memSubscriptionRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type memInstallmentRepo struct {
	installments  []*entity.Installment
	transactions  *memTransactionRepo
	occurrenceErr error
}

func (r *memInstallmentRepo) Create(_ context.Context, installment *entity.Installment) error {
	r.installments = append(r.installments, installment)
	return nil
}

func (r *memInstallmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Installment, error) {
	for _, plan := range r.installments {
		if plan.ID == id {
			return plan, nil
		}
	}
	return nil, domainerror.ErrInstallmentNotFound
}

func (r *memInstallmentRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Installment, error) {
	var result []*entity.Installment
	for _, plan := range r.installments {
		if plan.UserID == userID {
			result = append(result, plan)
		}
	}
	return result, nil
}

func (r *memInstallmentRepo) Save(_ context.Context, _ *entity.Installment) error {
	return nil
}

func (r *memInstallmentRepo) CreateOccurrence(ctx context.Context, _ *entity.Installment, transaction *entity.Transaction) error {
	if r.occurrenceErr != nil {
		return r.occurrenceErr
	}
	// Plans are shared pointers here, so the decremented counter is already
	// visible; only the entry needs recording.
	return r.transactions.Create(ctx, transaction)
}

func (r *memInstallmentRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
