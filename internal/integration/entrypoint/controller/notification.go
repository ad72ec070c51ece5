package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinkeeper/backend/internal/application/usecase/notification"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/dto"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	upcomingUseCase *notification.ListUpcomingPaymentsUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(upcomingUseCase *notification.ListUpcomingPaymentsUseCase) *NotificationController {
	return &NotificationController{upcomingUseCase: upcomingUseCase}
}

// ListUpcoming handles GET /notifications/upcoming requests. It returns the
// ledger entries due within the reminder window for the authenticated user.
func (c *NotificationController) ListUpcoming(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.upcomingUseCase.Execute(ctx.Request.Context(), notification.ListUpcomingPaymentsInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve upcoming payments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}
