// Package error defines domain-specific errors for the CoinKeeper application.
package error

import "errors"

// AI drafting errors.
var (
	// ErrAIUnavailable is returned when no AI provider is configured.
	ErrAIUnavailable = errors.New("ai provider is not configured")

	// ErrInvalidAIResponse is returned when the provider response cannot be
	// parsed into a transaction draft.
	ErrInvalidAIResponse = errors.New("failed to parse ai response")
)
