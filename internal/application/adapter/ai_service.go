// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// TransactionDraft is the structured result of AI transaction drafting.
type TransactionDraft struct {
	Name              string
	Details           string
	Type              entity.TransactionType
	Amount            decimal.Decimal
	SuggestedCategory string
}

// TransactionAIService defines the interface for turning a free-text
// description into a structured transaction draft.
type TransactionAIService interface {
	// IsAvailable reports whether a provider is configured.
	IsAvailable() bool

	// GenerateFromDescription produces a transaction draft for the description.
	GenerateFromDescription(ctx context.Context, description string) (*TransactionDraft, error)
}
