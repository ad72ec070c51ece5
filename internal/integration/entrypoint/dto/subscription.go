package dto

import (
	"time"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// CreateSubscriptionRequest represents the request body for subscription
// creation. PaidAt anchors the recurrence: it is the date of the first
// occurrence.
type CreateSubscriptionRequest struct {
	Name          string  `json:"name" binding:"required,min=3,max=100"`
	Details       string  `json:"details,omitempty" binding:"omitempty,max=500"`
	Cost          float64 `json:"cost" binding:"required,gt=0"`
	Recurrence    string  `json:"recurrence" binding:"required,oneof=WEEKLY BIWEEKLY MONTHLY YEARLY"`
	PaidAt        string  `json:"paid_at" binding:"required"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	CategoryID    string  `json:"category_id" binding:"required,uuid"`
	AccountID     string  `json:"account_id" binding:"required,uuid"`
}

// UpdateSubscriptionRequest represents the request body for subscription
// update.
type UpdateSubscriptionRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=3,max=100"`
	Details       *string  `json:"details,omitempty" binding:"omitempty,max=500"`
	Cost          *float64 `json:"cost,omitempty" binding:"omitempty,gt=0"`
	Recurrence    *string  `json:"recurrence,omitempty" binding:"omitempty,oneof=WEEKLY BIWEEKLY MONTHLY YEARLY"`
	PaidAt        *string  `json:"paid_at,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID     *string  `json:"account_id,omitempty" binding:"omitempty,uuid"`
}

// SubscriptionResponse represents a subscription in API responses.
type SubscriptionResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Details       string    `json:"details"`
	Cost          string    `json:"cost"`
	Recurrence    string    `json:"recurrence"`
	PaidAt        string    `json:"paid_at"`
	PaymentMethod string    `json:"payment_method"`
	CategoryID    string    `json:"category_id"`
	AccountID     string    `json:"account_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// ToSubscriptionResponse converts a Subscription entity to a
// SubscriptionResponse DTO.
func ToSubscriptionResponse(sub *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:            sub.ID.String(),
		Name:          sub.Name,
		Details:       sub.Details,
		Cost:          sub.Cost.String(),
		Recurrence:    string(sub.Recurrence),
		PaidAt:        sub.PaidAt.Format("2006-01-02"),
		PaymentMethod: sub.PaymentMethod,
		CategoryID:    sub.CategoryID.String(),
		AccountID:     sub.AccountID.String(),
		CreatedAt:     sub.CreatedAt,
		UpdatedAt:     sub.UpdatedAt,
	}
}

// ToSubscriptionListResponse converts a slice of Subscription entities to a
// SubscriptionListResponse.
func ToSubscriptionListResponse(subs []*entity.Subscription) SubscriptionListResponse {
	responses := make([]SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = ToSubscriptionResponse(sub)
	}
	return SubscriptionListResponse{Subscriptions: responses}
}
