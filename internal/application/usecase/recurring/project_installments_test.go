package recurring

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

func newTestInstallment(userID uuid.UUID, cost string, total int, paidAt time.Time) *entity.Installment {
	return entity.NewInstallment(
		userID,
		"Notebook",
		"Work machine",
		decimal.RequireFromString(cost),
		paidAt,
		total,
		"Credit Card",
		uuid.New(),
		uuid.New(),
	)
}

func newInstallmentFixture(plans ...*entity.Installment) (*memTransactionRepo, *memInstallmentRepo, *ProjectInstallmentsUseCase) {
	txRepo := &memTransactionRepo{}
	planRepo := &memInstallmentRepo{installments: plans, transactions: txRepo}
	return txRepo, planRepo, NewProjectInstallmentsUseCase(planRepo, txRepo)
}

func TestProjectInstallments_ThreeOfThreeScenario(t *testing.T) {
	// Plan: total=3, remaining=3, paid at 2024-01-01; run with now=2024-04-01.
	// Expect exactly three entries dated January through March, numbered
	// (1/3)..(3/3), and remaining=0 afterwards.
	userID := uuid.New()
	plan := newTestInstallment(userID, "300", 3, date(2024, time.January, 1))
	txRepo, _, uc := newInstallmentFixture(plan)

	output, err := uc.Execute(context.Background(), ProjectInstallmentsInput{
		UserID: userID,
		Now:    date(2024, time.April, 1),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Created != 3 {
		t.Fatalf("created %d occurrences, want 3", output.Created)
	}
	if plan.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", plan.Remaining)
	}

	generated := txRepo.withProvenance(nil, &plan.ID)
	wantDates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 1),
		date(2024, time.March, 1),
	}
	for i, tx := range generated {
		if !tx.Date.Equal(wantDates[i]) {
			t.Errorf("occurrence %d dated %v, want %v", i+1, tx.Date, wantDates[i])
		}
		if want := fmt.Sprintf("Notebook (%d/3)", i+1); tx.Name != want {
			t.Errorf("occurrence %d named %q, want %q", i+1, tx.Name, want)
		}
		if !tx.Amount.Equal(decimal.RequireFromString("100")) {
			t.Errorf("occurrence %d amount = %s, want 100", i+1, tx.Amount)
		}
		if tx.CategoryID != plan.CategoryID || tx.AccountID != plan.AccountID {
			t.Errorf("occurrence %d did not propagate plan category/account", i+1)
		}
		if tx.SubscriptionID != nil {
			t.Errorf("occurrence %d carries subscription provenance", i+1)
		}
	}
}

func TestProjectInstallments_FinalOccurrenceAbsorbsRounding(t *testing.T) {
	userID := uuid.New()
	plan := newTestInstallment(userID, "100", 3, date(2024, time.January, 1))
	txRepo, _, uc := newInstallmentFixture(plan)

	if _, err := uc.Execute(context.Background(), ProjectInstallmentsInput{
		UserID: userID,
		Now:    date(2024, time.December, 1),
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	generated := txRepo.withProvenance(nil, &plan.ID)
	if len(generated) != 3 {
		t.Fatalf("created %d occurrences, want 3", len(generated))
	}

	sum := decimal.Zero
	for _, tx := range generated {
		sum = sum.Add(tx.Amount)
	}
	if !sum.Equal(plan.Cost) {
		t.Errorf("occurrence amounts sum to %s, want exactly %s", sum, plan.Cost)
	}
	if !generated[0].Amount.Equal(decimal.RequireFromString("33.33")) {
		t.Errorf("first occurrence = %s, want 33.33", generated[0].Amount)
	}
	if !generated[2].Amount.Equal(decimal.RequireFromString("33.34")) {
		t.Errorf("final occurrence = %s, want 33.34", generated[2].Amount)
	}
}

func TestProjectInstallments_SkipsExhaustedPlans(t *testing.T) {
	userID := uuid.New()
	plan := newTestInstallment(userID, "300", 3, date(2024, time.January, 1))
	plan.Remaining = 0
	txRepo, _, uc := newInstallmentFixture(plan)

	output, err := uc.Execute(context.Background(), ProjectInstallmentsInput{
		UserID: userID,
		Now:    date(2024, time.June, 1),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Created != 0 || len(txRepo.transactions) != 0 {
		t.Errorf("exhausted plan generated %d occurrences, want 0", output.Created)
	}
}

func TestProjectInstallments_GenerationIsBounded(t *testing.T) {
	// Re-running any number of times, with now arbitrarily far ahead, the
	// plan never produces more than its total and the counter never goes
	// negative.
	userID := uuid.New()
	plan := newTestInstallment(userID, "480", 4, date(2024, time.January, 1))
	txRepo, _, uc := newInstallmentFixture(plan)

	for run := 0; run < 5; run++ {
		now := date(2024+run, time.June, 1)
		if _, err := uc.Execute(context.Background(), ProjectInstallmentsInput{UserID: userID, Now: now}); err != nil {
			t.Fatalf("run %d returned error: %v", run, err)
		}
		if plan.Remaining < 0 {
			t.Fatalf("run %d drove remaining negative: %d", run, plan.Remaining)
		}
	}

	if got := len(txRepo.withProvenance(nil, &plan.ID)); got != plan.Total {
		t.Errorf("generated %d occurrences in total, want %d", got, plan.Total)
	}
	if plan.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", plan.Remaining)
	}
}

func TestProjectInstallments_CatchesUpAcrossRuns(t *testing.T) {
	userID := uuid.New()
	plan := newTestInstallment(userID, "300", 3, date(2024, time.January, 1))
	txRepo, _, uc := newInstallmentFixture(plan)

	// First run midway: only January and February are due.
	if _, err := uc.Execute(context.Background(), ProjectInstallmentsInput{
		UserID: userID,
		Now:    date(2024, time.February, 15),
	}); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	if plan.Remaining != 1 {
		t.Fatalf("after first run remaining = %d, want 1", plan.Remaining)
	}

	// Second run later: resumes from the February entry and emits March.
	output, err := uc.Execute(context.Background(), ProjectInstallmentsInput{
		UserID: userID,
		Now:    date(2024, time.April, 1),
	})
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if output.Created != 1 {
		t.Fatalf("second run created %d occurrences, want 1", output.Created)
	}

	generated := txRepo.withProvenance(nil, &plan.ID)
	last := generated[len(generated)-1]
	if !last.Date.Equal(date(2024, time.March, 1)) {
		t.Errorf("resumed occurrence dated %v, want 2024-03-01", last.Date)
	}
	if last.Name != "Notebook (3/3)" {
		t.Errorf("resumed occurrence named %q, want \"Notebook (3/3)\"", last.Name)
	}
}

func TestProjectInstallments_PropagatesOccurrenceWriteErrors(t *testing.T) {
	userID := uuid.New()
	plan := newTestInstallment(userID, "300", 3, date(2024, time.January, 1))
	txRepo := &memTransactionRepo{}
	wantErr := errors.New("write rejected")
	planRepo := &memInstallmentRepo{installments: []*entity.Installment{plan}, transactions: txRepo, occurrenceErr: wantErr}
	uc := NewProjectInstallmentsUseCase(planRepo, txRepo)

	_, err := uc.Execute(context.Background(), ProjectInstallmentsInput{
		UserID: userID,
		Now:    date(2024, time.April, 1),
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want wrapped %v", err, wantErr)
	}
	if len(txRepo.transactions) != 0 {
		t.Errorf("failed occurrence write still stored %d entries", len(txRepo.transactions))
	}
}

func TestOccurrenceAmount(t *testing.T) {
	cost := decimal.RequireFromString("1000")
	tests := []struct {
		total      int
		occurrence int
		want       string
	}{
		{3, 1, "333.33"},
		{3, 2, "333.33"},
		{3, 3, "333.34"},
		{4, 4, "250"},
		{48, 1, "20.83"},
		{48, 48, "20.99"},
	}

	for _, tt := range tests {
		got := occurrenceAmount(cost, tt.total, tt.occurrence)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("occurrenceAmount(1000, %d, %d) = %s, want %s",
				tt.total, tt.occurrence, got, tt.want)
		}
	}
}
