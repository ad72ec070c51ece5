package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/backend/internal/application/usecase/installment"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/dto"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/middleware"
)

// InstallmentController handles installment plan endpoints.
type InstallmentController struct {
	listUseCase   *installment.ListInstallmentsUseCase
	createUseCase *installment.CreateInstallmentUseCase
	updateUseCase *installment.UpdateInstallmentUseCase
	deleteUseCase *installment.DeleteInstallmentUseCase
}

// NewInstallmentController creates a new installment controller instance.
func NewInstallmentController(
	listUseCase *installment.ListInstallmentsUseCase,
	createUseCase *installment.CreateInstallmentUseCase,
	updateUseCase *installment.UpdateInstallmentUseCase,
	deleteUseCase *installment.DeleteInstallmentUseCase,
) *InstallmentController {
	return &InstallmentController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /installments requests.
func (c *InstallmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), installment.ListInstallmentsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve installments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallmentListResponse(output.Installments))
}

// Create handles POST /installments requests.
func (c *InstallmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInstallmentRequest
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

	input := installment.CreateInstallmentInput{
		UserID:        userID,
		Name:          req.Name,
		Details:       req.Details,
		Cost:          decimal.NewFromFloat(req.Cost),
		PaidAt:        paidAt,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		CategoryID:    categoryID,
		AccountID:     accountID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInstallmentResponse(output.Installment))
}

// Update handles PATCH /installments/:id requests.
func (c *InstallmentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	installmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid installment ID format",
		})
		return
	}

	var req dto.UpdateInstallmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := installment.UpdateInstallmentInput{
		UserID:        userID,
		InstallmentID: installmentID,
		Name:          req.Name,
		Details:       req.Details,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	}

	if req.Cost != nil {
		cost := decimal.NewFromFloat(*req.Cost)
		input.Cost = &cost
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
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallmentResponse(output.Installment))
}

// Delete handles DELETE /installments/:id requests.
func (c *InstallmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	installmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid installment ID format",
		})
		return
	}

	input := installment.DeleteInstallmentInput{
		UserID:        userID,
		InstallmentID: installmentID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInstallmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleInstallmentError maps installment errors to HTTP responses.
func (c *InstallmentController) handleInstallmentError(ctx *gin.Context, err error) {
	var instErr *domainerror.InstallmentError
	if errors.As(err, &instErr) {
		ctx.JSON(statusForInstallmentCode(instErr.Code), dto.ErrorResponse{
			Error: instErr.Message,
			Code:  string(instErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrInstallmentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInstallmentNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// statusForInstallmentCode maps installment error codes to HTTP status codes.
func statusForInstallmentCode(code domainerror.InstallmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInstallmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInstallmentHasTransactions:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidInstallmentName,
		domainerror.ErrCodeInstallmentDetailsTooLong,
		domainerror.ErrCodeInvalidInstallmentCost,
		domainerror.ErrCodeTooFewInstallments,
		domainerror.ErrCodeTooManyInstallments,
		domainerror.ErrCodeInvalidRemainingCount,
		domainerror.ErrCodeInstallmentValueTooSmall,
		domainerror.ErrCodeInstallmentLimitReached,
		domainerror.ErrCodeInstallmentFutureDate,
		domainerror.ErrCodeInstallmentDateTooOld:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
