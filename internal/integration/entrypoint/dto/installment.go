package dto

import (
	"time"

	"github.com/coinkeeper/backend/internal/domain/entity"
)

// CreateInstallmentRequest represents the request body for installment plan
// creation. Cost is the full purchase cost, split evenly across Total
// monthly occurrences.
type CreateInstallmentRequest struct {
	Name          string  `json:"name" binding:"required,min=3,max=100"`
	Details       string  `json:"details,omitempty" binding:"omitempty,max=500"`
	Cost          float64 `json:"cost" binding:"required,gt=0"`
	PaidAt        string  `json:"paid_at" binding:"required"`
	Total         int     `json:"total" binding:"required,min=2,max=48"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	CategoryID    string  `json:"category_id" binding:"required,uuid"`
	AccountID     string  `json:"account_id" binding:"required,uuid"`
}

// UpdateInstallmentRequest represents the request body for installment plan
// update.
type UpdateInstallmentRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=3,max=100"`
	Details       *string  `json:"details,omitempty" binding:"omitempty,max=500"`
	Cost          *float64 `json:"cost,omitempty" binding:"omitempty,gt=0"`
	PaidAt        *string  `json:"paid_at,omitempty"`
	Total         *int     `json:"total,omitempty" binding:"omitempty,min=2,max=48"`
	PaymentMethod *string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID     *string  `json:"account_id,omitempty" binding:"omitempty,uuid"`
}

// InstallmentResponse represents an installment plan in API responses.
type InstallmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Details       string    `json:"details"`
	Cost          string    `json:"cost"`
	PaidAt        string    `json:"paid_at"`
	Total         int       `json:"total"`
	Remaining     int       `json:"remaining"`
	PaymentMethod string    `json:"payment_method"`
	CategoryID    string    `json:"category_id"`
	AccountID     string    `json:"account_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InstallmentListResponse represents the response for listing installment
// plans.
type InstallmentListResponse struct {
	Installments []InstallmentResponse `json:"installments"`
}

// ToInstallmentResponse converts an Installment entity to an
// InstallmentResponse DTO.
func ToInstallmentResponse(inst *entity.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:            inst.ID.String(),
		Name:          inst.Name,
		Details:       inst.Details,
		Cost:          inst.Cost.String(),
		PaidAt:        inst.PaidAt.Format("2006-01-02"),
		Total:         inst.Total,
		Remaining:     inst.Remaining,
		PaymentMethod: inst.PaymentMethod,
		CategoryID:    inst.CategoryID.String(),
		AccountID:     inst.AccountID.String(),
		CreatedAt:     inst.CreatedAt,
		UpdatedAt:     inst.UpdatedAt,
	}
}

// ToInstallmentListResponse converts a slice of Installment entities to an
// InstallmentListResponse.
func ToInstallmentListResponse(insts []*entity.Installment) InstallmentListResponse {
	responses := make([]InstallmentResponse, len(insts))
	for i, inst := range insts {
		responses[i] = ToInstallmentResponse(inst)
	}
	return InstallmentListResponse{Installments: responses}
}
