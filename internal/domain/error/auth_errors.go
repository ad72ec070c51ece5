// Package error defines domain-specific errors for the CoinKeeper application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidGoogleToken is returned when the Google access token cannot be validated.
	ErrInvalidGoogleToken = errors.New("failed to authenticate with Google")

	// ErrInvalidToken is returned when a session token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no session token was provided.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeInvalidGoogleToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010003"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020001"
)
