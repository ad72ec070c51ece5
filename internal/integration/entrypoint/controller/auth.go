// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinkeeper/backend/internal/application/usecase/auth"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
	"github.com/coinkeeper/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	authenticateUseCase *auth.AuthenticateUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(authenticateUseCase *auth.AuthenticateUserUseCase) *AuthController {
	return &AuthController{authenticateUseCase: authenticateUseCase}
}

// GoogleSignIn handles POST /auth/google requests. It exchanges a Google
// access token for a CoinKeeper session token, creating the user on first
// sign-in.
func (c *AuthController) GoogleSignIn(ctx *gin.Context) {
	var req dto.GoogleSignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := auth.AuthenticateUserInput{AccessToken: req.AccessToken}

	output, err := c.authenticateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidGoogleToken) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Failed to authenticate with Google",
				Code:  string(domainerror.ErrCodeInvalidGoogleToken),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSignInResponse(output))
}
