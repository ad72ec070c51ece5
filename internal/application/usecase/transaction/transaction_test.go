package transaction

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
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo(transactions ...*entity.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entity.Transaction)}
	for _, tx := range transactions {
		repo.transactions[tx.ID] = tx
	}
	return repo
}

func (r *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	r.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if tx, ok := r.transactions[id]; ok {
		return tx, nil
	}
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

func (r *fakeTransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	r.transactions[tx.ID] = tx
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error { return nil }
func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}
func (r *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) Save(ctx context.Context, c *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (r *fakeAccountRepo) Create(ctx context.Context, a *entity.Account) error { return nil }
func (r *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, domainerror.ErrAccountNotFound
}
func (r *fakeAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	return nil, nil
}
func (r *fakeAccountRepo) Save(ctx context.Context, a *entity.Account) error { return nil }
func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error    { return nil }

type testContext struct {
	userID   uuid.UUID
	category *entity.Category
	account  *entity.Account
	txRepo   *fakeTransactionRepo
	creator  *CreateTransactionUseCase
}

func newTestContext() *testContext {
	userID := uuid.New()
	category := entity.NewCategory(userID, "Groceries", entity.DefaultCategoryColor, "")
	account := entity.NewAccount(userID, "Wallet", "")
	txRepo := newFakeTransactionRepo()

	return &testContext{
		userID:   userID,
		category: category,
		account:  account,
		txRepo:   txRepo,
		creator: NewCreateTransactionUseCase(
			txRepo,
			&fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}},
			&fakeAccountRepo{accounts: map[uuid.UUID]*entity.Account{account.ID: account}},
		),
	}
}

func (tc *testContext) validInput() CreateTransactionInput {
	return CreateTransactionInput{
		UserID:        tc.userID,
		Name:          "Supermarket",
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:          entity.TransactionTypeExpense,
		Amount:        decimal.RequireFromString("42.50"),
		CategoryID:    tc.category.ID,
		AccountID:     tc.account.ID,
		PaymentMethod: "CREDIT_CARD",
	}
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a manual transaction without provenance", func(t *testing.T) {
		tc := newTestContext()

		output, err := tc.creator.Execute(ctx, tc.validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.SubscriptionID != nil || output.Transaction.InstallmentID != nil {
			t.Error("manual transaction must not carry provenance")
		}
		if len(tc.txRepo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(tc.txRepo.transactions))
		}
	})

	t.Run("rejects short names", func(t *testing.T) {
		tc := newTestContext()
		input := tc.validInput()
		input.Name = "ab"

		_, err := tc.creator.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionName) {
			t.Fatalf("expected ErrInvalidTransactionName, got %v", err)
		}
	})

	t.Run("rejects overlong details", func(t *testing.T) {
		tc := newTestContext()
		input := tc.validInput()
		input.Details = strings.Repeat("x", MaxDetailsLength+1)

		_, err := tc.creator.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrTransactionDetailsTooLong) {
			t.Fatalf("expected ErrTransactionDetailsTooLong, got %v", err)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		tc := newTestContext()
		input := tc.validInput()
		input.Type = "TRANSFER"

		_, err := tc.creator.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		tc := newTestContext()

		for _, amount := range []string{"0", "-5"} {
			input := tc.validInput()
			input.Amount = decimal.RequireFromString(amount)

			_, err := tc.creator.Execute(ctx, input)
			if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
				t.Errorf("amount %s: expected ErrInvalidTransactionAmount, got %v", amount, err)
			}
		}
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		tc := newTestContext()
		tc.category.UserID = uuid.New()

		_, err := tc.creator.Execute(ctx, tc.validInput())
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newTx := func() *entity.Transaction {
		return entity.NewTransaction(userID, "Supermarket", "", time.Now(),
			entity.TransactionTypeExpense, decimal.RequireFromString("10"),
			uuid.New(), uuid.New(), "CASH")
	}

	t.Run("applies partial updates", func(t *testing.T) {
		tx := newTx()
		uc := NewUpdateTransactionUseCase(newFakeTransactionRepo(tx))

		name := "Farmers Market"
		amount := decimal.RequireFromString("12.75")
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			UserID: userID, TransactionID: tx.ID,
			Name: &name, Amount: &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Name != "Farmers Market" || !output.Transaction.Amount.Equal(amount) {
			t.Errorf("update not applied: %+v", output.Transaction)
		}
		if output.Transaction.PaymentMethod != "CASH" {
			t.Error("untouched field changed")
		}
	})

	t.Run("other users cannot update", func(t *testing.T) {
		tx := newTx()
		uc := NewUpdateTransactionUseCase(newFakeTransactionRepo(tx))

		name := "Hijacked"
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			UserID: uuid.New(), TransactionID: tx.ID, Name: &name,
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Fatalf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tx := entity.NewTransaction(userID, "Supermarket", "", time.Now(),
		entity.TransactionTypeExpense, decimal.RequireFromString("10"),
		uuid.New(), uuid.New(), "CASH")

	t.Run("deletes own transaction", func(t *testing.T) {
		repo := newFakeTransactionRepo(tx)
		uc := NewDeleteTransactionUseCase(repo)

		if _, err := uc.Execute(ctx, DeleteTransactionInput{UserID: userID, TransactionID: tx.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("expected transaction to be deleted")
		}
	})

	t.Run("other users cannot delete", func(t *testing.T) {
		uc := NewDeleteTransactionUseCase(newFakeTransactionRepo(tx))

		_, err := uc.Execute(ctx, DeleteTransactionInput{UserID: uuid.New(), TransactionID: tx.ID})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Fatalf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})
}

type fakeAIService struct {
	available bool
	draft     *adapter.TransactionDraft
	err       error
}

func (s *fakeAIService) IsAvailable() bool { return s.available }

func (s *fakeAIService) GenerateFromDescription(ctx context.Context, description string) (*adapter.TransactionDraft, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.draft, nil
}

func TestGenerateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the provider draft", func(t *testing.T) {
		draft := &adapter.TransactionDraft{
			Name:   "Coffee",
			Type:   entity.TransactionTypeExpense,
			Amount: decimal.RequireFromString("4.50"),
		}
		uc := NewGenerateTransactionUseCase(&fakeAIService{available: true, draft: draft})

		output, err := uc.Execute(ctx, GenerateTransactionInput{Description: "coffee at the corner shop, 4.50"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Draft.Name != "Coffee" {
			t.Errorf("unexpected draft: %+v", output.Draft)
		}
	})

	t.Run("fails when no provider is configured", func(t *testing.T) {
		uc := NewGenerateTransactionUseCase(&fakeAIService{available: false})

		_, err := uc.Execute(ctx, GenerateTransactionInput{Description: "coffee"})
		if !errors.Is(err, domainerror.ErrAIUnavailable) {
			t.Fatalf("expected ErrAIUnavailable, got %v", err)
		}
	})

	t.Run("rejects empty descriptions", func(t *testing.T) {
		uc := NewGenerateTransactionUseCase(&fakeAIService{available: true})

		if _, err := uc.Execute(ctx, GenerateTransactionInput{Description: "   "}); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
