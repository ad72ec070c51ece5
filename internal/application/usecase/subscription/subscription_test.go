package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

type fakeSubscriptionRepo struct {
	subscriptions map[uuid.UUID]*entity.Subscription
}

func newFakeSubscriptionRepo(subscriptions ...*entity.Subscription) *fakeSubscriptionRepo {
	repo := &fakeSubscriptionRepo{subscriptions: make(map[uuid.UUID]*entity.Subscription)}
	for _, s := range subscriptions {
		repo.subscriptions[s.ID] = s
	}
	return repo
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	r.subscriptions[s.ID] = s
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	if s, ok := r.subscriptions[id]; ok {
		return s, nil
	}
	return nil, domainerror.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var result []*entity.Subscription
	for _, s := range r.subscriptions {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) Save(ctx context.Context, s *entity.Subscription) error {
	r.subscriptions[s.ID] = s
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.subscriptions, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (r *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}
func (r *fakeTransactionRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

func generatedTx(userID, subscriptionID uuid.UUID, date time.Time) *entity.Transaction {
	tx := entity.NewTransaction(userID, "Netflix", "", date, entity.TransactionTypeExpense,
		decimal.RequireFromString("15.99"), uuid.New(), uuid.New(), "CREDIT_CARD")
	tx.SubscriptionID = &subscriptionID
	return tx
}

func validCreateInput(userID uuid.UUID) CreateSubscriptionInput {
	return CreateSubscriptionInput{
		UserID:        userID,
		Name:          "Netflix",
		Cost:          decimal.RequireFromString("15.99"),
		Recurrence:    entity.RecurrenceMonthly,
		PaidAt:        time.Now().UTC().AddDate(0, -1, 0),
		PaymentMethod: "CREDIT_CARD",
		CategoryID:    uuid.New(),
		AccountID:     uuid.New(),
	}
}

func TestCreateSubscriptionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a subscription", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		uc := NewCreateSubscriptionUseCase(repo)

		output, err := uc.Execute(ctx, validCreateInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Subscription.Name != "Netflix" {
			t.Errorf("unexpected name %q", output.Subscription.Name)
		}
		if len(repo.subscriptions) != 1 {
			t.Errorf("expected 1 stored subscription, got %d", len(repo.subscriptions))
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*CreateSubscriptionInput)
			wantErr error
		}{
			{
				name:    "short name",
				mutate:  func(in *CreateSubscriptionInput) { in.Name = "ab" },
				wantErr: domainerror.ErrInvalidSubscriptionName,
			},
			{
				name:    "overlong details",
				mutate:  func(in *CreateSubscriptionInput) { in.Details = strings.Repeat("x", MaxDetailsLength+1) },
				wantErr: domainerror.ErrSubscriptionDetailsTooLong,
			},
			{
				name:    "cost below minimum",
				mutate:  func(in *CreateSubscriptionInput) { in.Cost = decimal.RequireFromString("0.001") },
				wantErr: domainerror.ErrInvalidSubscriptionCost,
			},
			{
				name:    "unknown recurrence",
				mutate:  func(in *CreateSubscriptionInput) { in.Recurrence = "DAILY" },
				wantErr: domainerror.ErrInvalidRecurrence,
			},
			{
				name:    "future anchor",
				mutate:  func(in *CreateSubscriptionInput) { in.PaidAt = time.Now().UTC().AddDate(0, 0, 1) },
				wantErr: domainerror.ErrFuturePaymentDate,
			},
			{
				name:    "anchor older than a year",
				mutate:  func(in *CreateSubscriptionInput) { in.PaidAt = time.Now().UTC().AddDate(-1, -1, 0) },
				wantErr: domainerror.ErrPaymentDateTooOld,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewCreateSubscriptionUseCase(newFakeSubscriptionRepo())
				input := validCreateInput(userID)
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})

	t.Run("enforces the active subscription limit", func(t *testing.T) {
		repo := newFakeSubscriptionRepo()
		uc := NewCreateSubscriptionUseCase(repo)

		for i := 0; i < MaxActiveSubscriptions; i++ {
			input := validCreateInput(userID)
			input.Name = fmt.Sprintf("Service %d", i)
			if _, err := uc.Execute(ctx, input); err != nil {
				t.Fatalf("unexpected error at %d: %v", i, err)
			}
		}

		_, err := uc.Execute(ctx, validCreateInput(userID))
		if !errors.Is(err, domainerror.ErrSubscriptionLimitReached) {
			t.Fatalf("expected ErrSubscriptionLimitReached, got %v", err)
		}
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		uc := NewCreateSubscriptionUseCase(newFakeSubscriptionRepo())
		if _, err := uc.Execute(ctx, validCreateInput(userID)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := validCreateInput(userID)
		input.Name = "NETFLIX"
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrDuplicateSubscriptionName) {
			t.Fatalf("expected ErrDuplicateSubscriptionName, got %v", err)
		}
	})
}

func TestUpdateSubscriptionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newSubscription := func() *entity.Subscription {
		return entity.NewSubscription(userID, "Netflix", "", decimal.RequireFromString("15.99"),
			entity.RecurrenceMonthly, time.Now().UTC().AddDate(0, -1, 0), "CREDIT_CARD",
			uuid.New(), uuid.New())
	}

	t.Run("updates the name", func(t *testing.T) {
		sub := newSubscription()
		uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), &fakeTransactionRepo{})

		name := "Netflix Premium"
		output, err := uc.Execute(ctx, UpdateSubscriptionInput{UserID: userID, SubscriptionID: sub.ID, Name: &name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Subscription.Name != "Netflix Premium" {
			t.Errorf("update not applied: %+v", output.Subscription)
		}
	})

	t.Run("schedule changes are blocked by future transactions", func(t *testing.T) {
		sub := newSubscription()
		future := generatedTx(userID, sub.ID, time.Now().UTC().AddDate(0, 1, 0))
		uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), &fakeTransactionRepo{transactions: []*entity.Transaction{future}})

		cost := decimal.RequireFromString("19.99")
		_, err := uc.Execute(ctx, UpdateSubscriptionInput{UserID: userID, SubscriptionID: sub.ID, Cost: &cost})
		if !errors.Is(err, domainerror.ErrSubscriptionHasFutureTransactions) {
			t.Fatalf("expected ErrSubscriptionHasFutureTransactions, got %v", err)
		}
	})

	t.Run("past transactions do not block schedule changes", func(t *testing.T) {
		sub := newSubscription()
		past := generatedTx(userID, sub.ID, time.Now().UTC().AddDate(0, -1, 0))
		uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), &fakeTransactionRepo{transactions: []*entity.Transaction{past}})

		cost := decimal.RequireFromString("19.99")
		if _, err := uc.Execute(ctx, UpdateSubscriptionInput{UserID: userID, SubscriptionID: sub.ID, Cost: &cost}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name changes are not blocked by future transactions", func(t *testing.T) {
		sub := newSubscription()
		future := generatedTx(userID, sub.ID, time.Now().UTC().AddDate(0, 1, 0))
		uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), &fakeTransactionRepo{transactions: []*entity.Transaction{future}})

		name := "Netflix 4K"
		if _, err := uc.Execute(ctx, UpdateSubscriptionInput{UserID: userID, SubscriptionID: sub.ID, Name: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("another user's subscription is invisible", func(t *testing.T) {
		sub := newSubscription()
		uc := NewUpdateSubscriptionUseCase(newFakeSubscriptionRepo(sub), &fakeTransactionRepo{})

		name := "Hijacked"
		_, err := uc.Execute(ctx, UpdateSubscriptionInput{UserID: uuid.New(), SubscriptionID: sub.ID, Name: &name})
		if !errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			t.Fatalf("expected ErrSubscriptionNotFound, got %v", err)
		}
	})
}

func TestDeleteSubscriptionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes a subscription without transactions", func(t *testing.T) {
		sub := entity.NewSubscription(userID, "Netflix", "", decimal.RequireFromString("15.99"),
			entity.RecurrenceMonthly, time.Now().UTC(), "CREDIT_CARD", uuid.New(), uuid.New())
		repo := newFakeSubscriptionRepo(sub)
		uc := NewDeleteSubscriptionUseCase(repo, &fakeTransactionRepo{})

		if _, err := uc.Execute(ctx, DeleteSubscriptionInput{UserID: userID, SubscriptionID: sub.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.subscriptions) != 0 {
			t.Error("expected subscription to be deleted")
		}
	})

	t.Run("referencing transactions block deletion", func(t *testing.T) {
		sub := entity.NewSubscription(userID, "Netflix", "", decimal.RequireFromString("15.99"),
			entity.RecurrenceMonthly, time.Now().UTC(), "CREDIT_CARD", uuid.New(), uuid.New())
		tx := generatedTx(userID, sub.ID, time.Now().UTC().AddDate(0, -1, 0))
		uc := NewDeleteSubscriptionUseCase(newFakeSubscriptionRepo(sub), &fakeTransactionRepo{transactions: []*entity.Transaction{tx}})

		_, err := uc.Execute(ctx, DeleteSubscriptionInput{UserID: userID, SubscriptionID: sub.ID})
		if !errors.Is(err, domainerror.ErrSubscriptionHasTransactions) {
			t.Fatalf("expected ErrSubscriptionHasTransactions, got %v", err)
		}
	})
}
