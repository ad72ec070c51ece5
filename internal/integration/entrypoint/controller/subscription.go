package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/usecase/subscription"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/dto"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/middleware"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	listUseCase   *subscription.ListSubscriptionsUseCase
	createUseCase *subscription.CreateSubscriptionUseCase
	updateUseCase *subscription.UpdateSubscriptionUseCase
	deleteUseCase *subscription.DeleteSubscriptionUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	listUseCase *subscription.ListSubscriptionsUseCase,
	createUseCase *subscription.CreateSubscriptionUseCase,
	updateUseCase *subscription.UpdateSubscriptionUseCase,
	deleteUseCase *subscription.DeleteSubscriptionUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), subscription.ListSubscriptionsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve subscriptions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output.Subscriptions))
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	paidAt, err := time.Parse(dateLayout, req.PaidAt)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid paid_at format, expected YYYY-MM-DD",
		})
		return
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	accountID, _ := uuid.Parse(req.AccountID)

	input := subscription.CreateSubscriptionInput{
		UserID:        userID,
		Name:          req.Name,
		Details:       req.Details,
		Cost:          decimal.NewFromFloat(req.Cost),
		Recurrence:    entity.RecurrenceType(req.Recurrence),
		PaidAt:        paidAt,
		PaymentMethod: req.PaymentMethod,
		CategoryID:    categoryID,
		AccountID:     accountID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Update handles PATCH /subscriptions/:id requests.
func (c *SubscriptionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	subscriptionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription ID format",
		})
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := subscription.UpdateSubscriptionInput{
		UserID:         userID,
		SubscriptionID: subscriptionID,
		Name:           req.Name,
		Details:        req.Details,
		PaymentMethod:  req.PaymentMethod,
	}

	if req.Cost != nil {
		cost := decimal.NewFromFloat(*req.Cost)
		input.Cost = &cost
	}
	if req.Recurrence != nil {
		recurrence := entity.RecurrenceType(*req.Recurrence)
		input.Recurrence = &recurrence
	}
	if req.PaidAt != nil {
		paidAt, err := time.Parse(dateLayout, *req.PaidAt)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid paid_at format, expected YYYY-MM-DD",
			})
			return
		}
		input.PaidAt = &paidAt
	}
	if req.CategoryID != nil {
		categoryID, _ := uuid.Parse(*req.CategoryID)
		input.CategoryID = &categoryID
	}
	if req.AccountID != nil {
		accountID, _ := uuid.Parse(*req.AccountID)
		input.AccountID = &accountID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Delete handles DELETE /subscriptions/:id requests.
func (c *SubscriptionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	subscriptionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription ID format",
		})
		return
	}

	input := subscription.DeleteSubscriptionInput{
		UserID:         userID,
		SubscriptionID: subscriptionID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSubscriptionError maps subscription errors to HTTP responses.
func (c *SubscriptionController) handleSubscriptionError(ctx *gin.Context, err error) {
	var subErr *domainerror.SubscriptionError
	if errors.As(err, &subErr) {
		ctx.JSON(statusForSubscriptionCode(subErr.Code), dto.ErrorResponse{
			Error: subErr.Message,
			Code:  string(subErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrSubscriptionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeSubscriptionNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusForSubscriptionCode maps subscription error codes to HTTP status codes.
func statusForSubscriptionCode(code domainerror.SubscriptionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSubscriptionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateSubscriptionName,
		domainerror.ErrCodeSubscriptionFutureConflict,
		domainerror.ErrCodeSubscriptionHasTransactions:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidSubscriptionName,
		domainerror.ErrCodeSubscriptionDetailsTooLong,
		domainerror.ErrCodeInvalidSubscriptionCost,
		domainerror.ErrCodeInvalidRecurrence,
		domainerror.ErrCodeFuturePaymentDate,
		domainerror.ErrCodePaymentDateTooOld,
		domainerror.ErrCodeSubscriptionLimitReached:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
