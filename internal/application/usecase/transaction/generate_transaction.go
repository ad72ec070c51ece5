package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/coinkeeper/backend/internal/application/adapter"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// GenerateTransactionInput represents the input for AI transaction drafting.
type GenerateTransactionInput struct {
	Description string
}

// GenerateTransactionOutput represents the output of AI transaction drafting.
// The draft is a suggestion; the client submits it through the normal create
// flow after the user confirms it.
type GenerateTransactionOutput struct {
	Draft *adapter.TransactionDraft
}

// GenerateTransactionUseCase turns a free-text description into a structured
// transaction draft using the configured AI provider.
type GenerateTransactionUseCase struct {
	aiService adapter.TransactionAIService
}

// NewGenerateTransactionUseCase creates a new GenerateTransactionUseCase instance.
func NewGenerateTransactionUseCase(aiService adapter.TransactionAIService) *GenerateTransactionUseCase {
	return &GenerateTransactionUseCase{aiService: aiService}
}

// Execute performs the drafting.
func (uc *GenerateTransactionUseCase) Execute(ctx context.Context, input GenerateTransactionInput) (*GenerateTransactionOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	if !uc.aiService.IsAvailable() {
		return nil, domainerror.ErrAIUnavailable
	}

	draft, err := uc.aiService.GenerateFromDescription(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction draft: %w", err)
	}

	return &GenerateTransactionOutput{Draft: draft}, nil
}
