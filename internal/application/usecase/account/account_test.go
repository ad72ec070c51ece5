package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := r.accounts[id]; ok {
		return account, nil
	}
	return nil, domainerror.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, account := range r.accounts {
		if account.UserID == userID {
			result = append(result, account)
		}
	}
	return result, nil
}

func (r *fakeAccountRepo) Save(ctx context.Context, account *entity.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
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

func TestCreateAccountUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates an account", func(t *testing.T) {
		repo := newFakeAccountRepo()
		uc := NewCreateAccountUseCase(repo)

		output, err := uc.Execute(ctx, CreateAccountInput{UserID: userID, Name: "Main Wallet", Color: "#00FF00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Account.Name != "Main Wallet" {
			t.Errorf("unexpected name %q", output.Account.Name)
		}
		if len(repo.accounts) != 1 {
			t.Errorf("expected 1 stored account, got %d", len(repo.accounts))
		}
	})

	t.Run("rejects too-short names", func(t *testing.T) {
		uc := NewCreateAccountUseCase(newFakeAccountRepo())

		_, err := uc.Execute(ctx, CreateAccountInput{UserID: userID, Name: " x "})
		if !errors.Is(err, domainerror.ErrInvalidAccountName) {
			t.Fatalf("expected ErrInvalidAccountName, got %v", err)
		}
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		repo := newFakeAccountRepo(entity.NewAccount(userID, "Savings", ""))
		uc := NewCreateAccountUseCase(repo)

		_, err := uc.Execute(ctx, CreateAccountInput{UserID: userID, Name: "savings"})
		if !errors.Is(err, domainerror.ErrDuplicateAccountName) {
			t.Fatalf("expected ErrDuplicateAccountName, got %v", err)
		}
	})

	t.Run("same name under another user is allowed", func(t *testing.T) {
		repo := newFakeAccountRepo(entity.NewAccount(uuid.New(), "Savings", ""))
		uc := NewCreateAccountUseCase(repo)

		if _, err := uc.Execute(ctx, CreateAccountInput{UserID: userID, Name: "Savings"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUpdateAccountUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates name and color", func(t *testing.T) {
		account := entity.NewAccount(userID, "Old", "#000000")
		repo := newFakeAccountRepo(account)
		uc := NewUpdateAccountUseCase(repo)

		name, color := "New Name", "#FFFFFF"
		output, err := uc.Execute(ctx, UpdateAccountInput{UserID: userID, AccountID: account.ID, Name: &name, Color: &color})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Account.Name != "New Name" || output.Account.Color != "#FFFFFF" {
			t.Errorf("update not applied: %+v", output.Account)
		}
	})

	t.Run("another user's account is invisible", func(t *testing.T) {
		account := entity.NewAccount(uuid.New(), "Theirs", "")
		uc := NewUpdateAccountUseCase(newFakeAccountRepo(account))

		name := "Mine Now"
		_, err := uc.Execute(ctx, UpdateAccountInput{UserID: userID, AccountID: account.ID, Name: &name})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestDeleteAccountUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes an unused account", func(t *testing.T) {
		account := entity.NewAccount(userID, "Wallet", "")
		repo := newFakeAccountRepo(account)
		uc := NewDeleteAccountUseCase(repo, &fakeTransactionRepo{})

		if _, err := uc.Execute(ctx, DeleteAccountInput{UserID: userID, AccountID: account.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.accounts) != 0 {
			t.Error("expected account to be deleted")
		}
	})

	t.Run("referencing transactions block deletion", func(t *testing.T) {
		account := entity.NewAccount(userID, "Wallet", "")
		tx := entity.NewTransaction(userID, "Groceries", "", time.Now(), entity.TransactionTypeExpense,
			decimal.RequireFromString("10"), uuid.New(), account.ID, "CASH")
		uc := NewDeleteAccountUseCase(newFakeAccountRepo(account), &fakeTransactionRepo{transactions: []*entity.Transaction{tx}})

		_, err := uc.Execute(ctx, DeleteAccountInput{UserID: userID, AccountID: account.ID})
		if !errors.Is(err, domainerror.ErrAccountHasTransactions) {
			t.Fatalf("expected ErrAccountHasTransactions, got %v", err)
		}
	})
}
