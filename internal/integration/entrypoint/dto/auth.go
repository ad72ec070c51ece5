package dto

import (
	"github.com/coinkeeper/backend/internal/application/usecase/auth"
)

// GoogleSignInRequest represents the request body for Google sign-in.
type GoogleSignInRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// SignInResponse represents the response of a successful sign-in.
type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToSignInResponse converts an AuthenticateUserOutput to a SignInResponse DTO.
func ToSignInResponse(output *auth.AuthenticateUserOutput) SignInResponse {
	return SignInResponse{
		Token: output.Token,
		User:  ToUserResponse(output.User),
	}
}
