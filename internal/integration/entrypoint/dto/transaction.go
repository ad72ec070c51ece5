package dto

import (
	"time"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Provenance links are never accepted from clients; generated
// entries come only from the recurring jobs.
type CreateTransactionRequest struct {
	Name          string  `json:"name" binding:"required,min=3,max=100"`
	Details       string  `json:"details,omitempty" binding:"omitempty,max=500"`
	Date          string  `json:"date" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	CategoryID    string  `json:"category_id" binding:"required,uuid"`
	AccountID     string  `json:"account_id" binding:"required,uuid"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=3,max=100"`
	Details       *string  `json:"details,omitempty" binding:"omitempty,max=500"`
	Date          *string  `json:"date,omitempty"`
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID     *string  `json:"account_id,omitempty" binding:"omitempty,uuid"`
	PaymentMethod *string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
}

// GenerateTransactionRequest represents the request body for AI transaction
// drafting.
type GenerateTransactionRequest struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Details        string    `json:"details"`
	Date           string    `json:"date"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	CategoryID     string    `json:"category_id"`
	AccountID      string    `json:"account_id"`
	PaymentMethod  string    `json:"payment_method"`
	SubscriptionID *string   `json:"subscription_id,omitempty"`
	InstallmentID  *string   `json:"installment_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionDraftResponse represents an AI-generated transaction draft.
// The draft is a suggestion only; nothing is persisted until the client
// submits it through the regular creation endpoint.
type TransactionDraftResponse struct {
	Name              string `json:"name"`
	Details           string `json:"details"`
	Type              string `json:"type"`
	Amount            string `json:"amount"`
	SuggestedCategory string `json:"suggested_category"`
}

// ToTransactionResponse converts a Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:            txn.ID.String(),
		Name:          txn.Name,
		Details:       txn.Details,
		Date:          txn.Date.Format("2006-01-02"),
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		CategoryID:    txn.CategoryID.String(),
		AccountID:     txn.AccountID.String(),
		PaymentMethod: txn.PaymentMethod,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}

	if txn.SubscriptionID != nil {
		id := txn.SubscriptionID.String()
		response.SubscriptionID = &id
	}

	if txn.InstallmentID != nil {
		id := txn.InstallmentID.String()
		response.InstallmentID = &id
	}

	return response
}

// ToTransactionListResponse converts a slice of Transaction entities to a
// TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: responses}
}

// ToTransactionDraftResponse converts a TransactionDraft to a
// TransactionDraftResponse DTO.
func ToTransactionDraftResponse(draft *adapter.TransactionDraft) TransactionDraftResponse {
	return TransactionDraftResponse{
		Name:              draft.Name,
		Details:           draft.Details,
		Type:              string(draft.Type),
		Amount:            draft.Amount.String(),
		SuggestedCategory: draft.SuggestedCategory,
	}
}
