package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

// NewProvider builds a Provider from the configured name. An empty name
// yields nil, leaving the drafting feature disabled.
func NewProvider(name, apiKey string) (Provider, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "gemini":
		return NewGeminiProvider(apiKey), nil
	case "openai":
		return NewOpenAIProvider(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", name)
	}
}

// Service implements adapter.TransactionAIService on top of a Provider.
type Service struct {
	provider Provider
}

// NewService creates a drafting service. provider may be nil when no backend
// is configured.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// IsAvailable reports whether a provider is configured.
func (s *Service) IsAvailable() bool {
	return s.provider != nil
}

// GenerateFromDescription produces a transaction draft for the description.
func (s *Service) GenerateFromDescription(ctx context.Context, description string) (*adapter.TransactionDraft, error) {
	if s.provider == nil {
		return nil, domainerror.ErrAIUnavailable
	}

	raw, err := s.provider.Generate(ctx, buildPrompt(description), GenerateConfig{
		Temperature: 0.2,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s generation failed: %w", s.provider.Name(), err)
	}

	return parseDraft(raw)
}

func buildPrompt(description string) string {
	var sb strings.Builder
	sb.WriteString("You are an assistant that converts a free-text expense or income description into a structured transaction.\n\n")
	sb.WriteString("Respond with a single JSON object and nothing else, using exactly these fields:\n")
	sb.WriteString(`{"name": string, "details": string, "type": "INCOME" or "EXPENSE", "amount": string decimal, "suggested_category": string}`)
	sb.WriteString("\n\nRules:\n")
	sb.WriteString("- name is a short title (3-40 characters)\n")
	sb.WriteString("- amount is the positive numeric value mentioned, formatted with two decimals; use \"0.00\" when no amount is mentioned\n")
	sb.WriteString("- type defaults to EXPENSE unless the description clearly describes money received\n\n")
	sb.WriteString("Description: ")
	sb.WriteString(description)
	return sb.String()
}

// draftPayload mirrors the JSON shape the prompt asks for.
type draftPayload struct {
	Name              string `json:"name"`
	Details           string `json:"details"`
	Type              string `json:"type"`
	Amount            string `json:"amount"`
	SuggestedCategory string `json:"suggested_category"`
}

// parseDraft turns a raw provider response into a draft. Providers sometimes
// wrap JSON in markdown fences even when asked not to.
func parseDraft(raw string) (*adapter.TransactionDraft, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload draftPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidAIResponse, err)
	}

	txType := entity.TransactionType(strings.ToUpper(payload.Type))
	if txType != entity.TransactionTypeIncome && txType != entity.TransactionTypeExpense {
		txType = entity.TransactionTypeExpense
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil || amount.IsNegative() {
		return nil, fmt.Errorf("%w: bad amount %q", domainerror.ErrInvalidAIResponse, payload.Amount)
	}

	if payload.Name == "" {
		return nil, fmt.Errorf("%w: missing name", domainerror.ErrInvalidAIResponse)
	}

	return &adapter.TransactionDraft{
		Name:              payload.Name,
		Details:           payload.Details,
		Type:              txType,
		Amount:            amount,
		SuggestedCategory: payload.SuggestedCategory,
	}, nil
}
