package recurring

import (
	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// latestSubscriptionTransaction returns the most recent transaction
// generated from the given subscription, or nil when none exists.
func latestSubscriptionTransaction(transactions []*entity.Transaction, subscriptionID uuid.UUID) *entity.Transaction {
	return latestMatching(transactions, func(tx *entity.Transaction) bool {
		return tx.SubscriptionID != nil && *tx.SubscriptionID == subscriptionID
	})
}

// latestInstallmentTransaction returns the most recent transaction generated
// from the given installment plan, or nil when none exists.
func latestInstallmentTransaction(transactions []*entity.Transaction, installmentID uuid.UUID) *entity.Transaction {
	return latestMatching(transactions, func(tx *entity.Transaction) bool {
		return tx.InstallmentID != nil && *tx.InstallmentID == installmentID
	})
}

func latestMatching(transactions []*entity.Transaction, match func(*entity.Transaction) bool) *entity.Transaction {
	var latest *entity.Transaction
	for _, tx := range transactions {
		if !match(tx) {
			continue
		}
		if latest == nil || moreRecent(tx, latest) {
			latest = tx
		}
	}
	return latest
}

// moreRecent orders transactions by date, then creation timestamp, then ID,
// so the "latest" pick stays deterministic when occurrences share a date.
func moreRecent(a, b *entity.Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}
