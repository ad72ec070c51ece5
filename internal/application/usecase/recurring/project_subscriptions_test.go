package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

func newTestSubscription(userID uuid.UUID, recurrence entity.RecurrenceType, paidAt time.Time) *entity.Subscription {
	return entity.NewSubscription(
		userID,
		"Internet",
		"Fiber plan",
		decimal.RequireFromString("89.90"),
		recurrence,
		paidAt,
		"Credit Card",
		uuid.New(),
		uuid.New(),
	)
}

func TestProjectSubscriptions_MonthlyScenario(t *testing.T) {
	// Subscription anchored at 2024-01-01, run at 2024-01-15: the horizon is
	// 2024-04-15 and the anchor itself is excluded as not-future.
	userID := uuid.New()
	sub := newTestSubscription(userID, entity.RecurrenceMonthly, date(2024, time.January, 1))

	txRepo := &memTransactionRepo{}
	subRepo := &memSubscriptionRepo{subscriptions: []*entity.Subscription{sub}}
	uc := NewProjectSubscriptionsUseCase(txRepo, subRepo)

	output, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{
		UserID: userID,
		Now:    date(2024, time.January, 15),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	want := []time.Time{
		date(2024, time.February, 1),
		date(2024, time.March, 1),
		date(2024, time.April, 1),
	}
	generated := txRepo.withProvenance(&sub.ID, nil)

	if output.Created != len(want) || len(generated) != len(want) {
		t.Fatalf("created %d transactions, want %d", len(generated), len(want))
	}
	for i, tx := range generated {
		if !tx.Date.Equal(want[i]) {
			t.Errorf("transaction %d dated %v, want %v", i, tx.Date, want[i])
		}
		if tx.Type != entity.TransactionTypeExpense {
			t.Errorf("transaction %d type = %s, want EXPENSE", i, tx.Type)
		}
		if !tx.Amount.Equal(sub.Cost) {
			t.Errorf("transaction %d amount = %s, want %s", i, tx.Amount, sub.Cost)
		}
		if tx.CategoryID != sub.CategoryID || tx.AccountID != sub.AccountID {
			t.Errorf("transaction %d did not copy category/account from subscription", i)
		}
		if tx.InstallmentID != nil {
			t.Errorf("transaction %d carries installment provenance", i)
		}
	}
}

func TestProjectSubscriptions_IsResumable(t *testing.T) {
	userID := uuid.New()
	sub := newTestSubscription(userID, entity.RecurrenceWeekly, date(2024, time.January, 1))

	txRepo := &memTransactionRepo{}
	subRepo := &memSubscriptionRepo{subscriptions: []*entity.Subscription{sub}}
	uc := NewProjectSubscriptionsUseCase(txRepo, subRepo)

	now := date(2024, time.January, 10)

	first, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{UserID: userID, Now: now})
	if err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	if first.Created == 0 {
		t.Fatal("first run created no transactions")
	}

	second, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{UserID: userID, Now: now})
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if second.Created != 0 {
		t.Errorf("second run with no elapsed time created %d duplicates", second.Created)
	}
}

func TestProjectSubscriptions_NeverBackfills(t *testing.T) {
	// An anchor a year in the past must not produce past-due entries: only
	// occurrences strictly after now are materialized.
	userID := uuid.New()
	sub := newTestSubscription(userID, entity.RecurrenceMonthly, date(2023, time.February, 10))

	txRepo := &memTransactionRepo{}
	subRepo := &memSubscriptionRepo{subscriptions: []*entity.Subscription{sub}}
	uc := NewProjectSubscriptionsUseCase(txRepo, subRepo)

	now := date(2024, time.February, 15)
	if _, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{UserID: userID, Now: now}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	for _, tx := range txRepo.transactions {
		if !tx.Date.After(now) {
			t.Errorf("backfilled entry dated %v, which is not after now (%v)", tx.Date, now)
		}
	}
	if len(txRepo.transactions) != 3 {
		t.Errorf("created %d entries, want 3 (March, April, May)", len(txRepo.transactions))
	}
}

func TestProjectSubscriptions_ResumesFromLatestTransaction(t *testing.T) {
	userID := uuid.New()
	sub := newTestSubscription(userID, entity.RecurrenceMonthly, date(2024, time.January, 5))

	// A previous run already generated entries up to March 5.
	existing := entity.NewTransaction(userID, sub.Name, "", date(2024, time.March, 5),
		entity.TransactionTypeExpense, sub.Cost, sub.CategoryID, sub.AccountID, sub.PaymentMethod)
	existing.SubscriptionID = &sub.ID

	txRepo := &memTransactionRepo{transactions: []*entity.Transaction{existing}}
	subRepo := &memSubscriptionRepo{subscriptions: []*entity.Subscription{sub}}
	uc := NewProjectSubscriptionsUseCase(txRepo, subRepo)

	output, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{
		UserID: userID,
		Now:    date(2024, time.March, 10),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	// Cursor resumes at April 5; horizon is June 10.
	if output.Created != 3 {
		t.Fatalf("created %d transactions, want 3", output.Created)
	}
	generated := txRepo.withProvenance(&sub.ID, nil)
	if first := generated[1]; !first.Date.Equal(date(2024, time.April, 5)) {
		t.Errorf("first resumed entry dated %v, want 2024-04-05", first.Date)
	}
}

func TestProjectSubscriptions_LatestPickIsDeterministicOnDateTies(t *testing.T) {
	userID := uuid.New()
	sub := newTestSubscription(userID, entity.RecurrenceMonthly, date(2024, time.January, 5))

	// Two entries share the same date; the later CreatedAt wins.
	older := entity.NewTransaction(userID, sub.Name, "", date(2024, time.February, 5),
		entity.TransactionTypeExpense, sub.Cost, sub.CategoryID, sub.AccountID, sub.PaymentMethod)
	older.SubscriptionID = &sub.ID
	older.CreatedAt = date(2024, time.January, 1)

	newer := *older
	newer.ID = uuid.New()
	newer.CreatedAt = date(2024, time.January, 2)

	if got := latestSubscriptionTransaction([]*entity.Transaction{older, &newer}, sub.ID); got != &newer {
		t.Error("expected the entry with the later creation timestamp to win the tie")
	}
	if got := latestSubscriptionTransaction([]*entity.Transaction{&newer, older}, sub.ID); got != &newer {
		t.Error("tie-break depends on input order")
	}
}

func TestProjectSubscriptions_PropagatesRepositoryErrors(t *testing.T) {
	userID := uuid.New()
	sub := newTestSubscription(userID, entity.RecurrenceMonthly, date(2024, time.January, 1))

	t.Run("subscription lookup failure", func(t *testing.T) {
		wantErr := errors.New("store unavailable")
		uc := NewProjectSubscriptionsUseCase(&memTransactionRepo{}, &memSubscriptionRepo{findErr: wantErr})

		_, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{UserID: userID, Now: date(2024, time.January, 15)})
		if !errors.Is(err, wantErr) {
			t.Errorf("got %v, want wrapped %v", err, wantErr)
		}
	})

	t.Run("entry creation failure", func(t *testing.T) {
		wantErr := errors.New("write rejected")
		txRepo := &memTransactionRepo{createErr: wantErr}
		uc := NewProjectSubscriptionsUseCase(txRepo, &memSubscriptionRepo{subscriptions: []*entity.Subscription{sub}})

		_, err := uc.Execute(context.Background(), ProjectSubscriptionsInput{UserID: userID, Now: date(2024, time.January, 15)})
		if !errors.Is(err, wantErr) {
			t.Errorf("got %v, want wrapped %v", err, wantErr)
		}
	})
}
