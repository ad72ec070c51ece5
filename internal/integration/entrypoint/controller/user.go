package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinkeeper/backend/internal/application/usecase/user"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/dto"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getProfileUseCase   *user.GetProfileUseCase
	registerPushUseCase *user.RegisterPushSubscriptionUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	registerPushUseCase *user.RegisterPushSubscriptionUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:   getProfileUseCase,
		registerPushUseCase: registerPushUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// RegisterPushSubscription handles PUT /users/me/push-subscription requests.
// A null subscription clears the stored registration.
func (c *UserController) RegisterPushSubscription(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RegisterPushSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	subscription := string(req.Subscription)
	if subscription == "null" {
		subscription = ""
	}

	input := user.RegisterPushSubscriptionInput{
		UserID:       userID,
		Subscription: subscription,
	}

	if _, err := c.registerPushUseCase.Execute(ctx.Request.Context(), input); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid push subscription payload",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
