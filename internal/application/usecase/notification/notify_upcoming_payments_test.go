package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

type memTransactionRepo struct {
	transactions []*entity.Transaction
	findErr      error
}

func (r *memTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *memTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (r *memTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *memTransactionRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}
func (r *memTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error { return nil }
func (r *memTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type recordingSender struct {
	sent    map[uuid.UUID][]adapter.Notification
	sendErr error
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: make(map[uuid.UUID][]adapter.Notification)}
}

func (s *recordingSender) Send(ctx context.Context, userID uuid.UUID, n adapter.Notification) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent[userID] = append(s.sent[userID], n)
	return nil
}

func upcomingTx(userID uuid.UUID, name string, amount string, date time.Time) *entity.Transaction {
	return entity.NewTransaction(
		userID, name, "", date,
		entity.TransactionTypeExpense,
		decimal.RequireFromString(amount),
		uuid.New(), uuid.New(), "CREDIT_CARD",
	)
}

func TestNotifyUpcomingPaymentsUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("notifies each user once with their own payments summed", func(t *testing.T) {
		alice := uuid.New()
		bob := uuid.New()
		repo := &memTransactionRepo{transactions: []*entity.Transaction{
			upcomingTx(alice, "Netflix", "15.99", now.AddDate(0, 0, 1)),
			upcomingTx(alice, "Spotify", "9.99", now.AddDate(0, 0, 2)),
			upcomingTx(bob, "Rent", "1200", now.AddDate(0, 0, 3)),
		}}
		email := newRecordingSender()
		push := newRecordingSender()
		uc := NewNotifyUpcomingPaymentsUseCase(repo, email, push)

		output, err := uc.Execute(ctx, NotifyUpcomingPaymentsInput{Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NotifiedUsers != 2 {
			t.Fatalf("expected 2 notified users, got %d", output.NotifiedUsers)
		}

		if len(email.sent[alice]) != 1 || len(push.sent[alice]) != 1 {
			t.Fatalf("expected one notification per channel for alice, got email=%d push=%d",
				len(email.sent[alice]), len(push.sent[alice]))
		}
		body := email.sent[alice][0].Body
		if !strings.Contains(body, "2 payments") || !strings.Contains(body, "$25.98") {
			t.Errorf("unexpected alice summary body: %q", body)
		}

		bobBody := email.sent[bob][0].Body
		if !strings.Contains(bobBody, "1 payment ") || !strings.Contains(bobBody, "$1200.00") {
			t.Errorf("unexpected bob summary body: %q", bobBody)
		}
	})

	t.Run("ignores payments outside the three day window", func(t *testing.T) {
		user := uuid.New()
		repo := &memTransactionRepo{transactions: []*entity.Transaction{
			upcomingTx(user, "Too late", "10", now.AddDate(0, 0, 5)),
			upcomingTx(user, "Already due", "10", now.AddDate(0, 0, -1)),
		}}
		email := newRecordingSender()
		push := newRecordingSender()
		uc := NewNotifyUpcomingPaymentsUseCase(repo, email, push)

		output, err := uc.Execute(ctx, NotifyUpcomingPaymentsInput{Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NotifiedUsers != 0 {
			t.Errorf("expected 0 notified users, got %d", output.NotifiedUsers)
		}
	})

	t.Run("one failing channel still counts the user as notified", func(t *testing.T) {
		user := uuid.New()
		repo := &memTransactionRepo{transactions: []*entity.Transaction{
			upcomingTx(user, "Netflix", "15.99", now.AddDate(0, 0, 1)),
		}}
		email := newRecordingSender()
		email.sendErr = errors.New("smtp down")
		push := newRecordingSender()
		uc := NewNotifyUpcomingPaymentsUseCase(repo, email, push)

		output, err := uc.Execute(ctx, NotifyUpcomingPaymentsInput{Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.NotifiedUsers != 1 {
			t.Errorf("expected 1 notified user, got %d", output.NotifiedUsers)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &memTransactionRepo{findErr: errors.New("connection refused")}
		uc := NewNotifyUpcomingPaymentsUseCase(repo, newRecordingSender(), newRecordingSender())

		if _, err := uc.Execute(ctx, NotifyUpcomingPaymentsInput{Now: now}); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
