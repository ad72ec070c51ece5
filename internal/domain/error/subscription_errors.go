// Package error defines domain-specific errors for the CoinKeeper application.
package error

import "errors"

// Subscription domain errors.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidSubscriptionName is returned when the name is shorter than 3 characters.
	ErrInvalidSubscriptionName = errors.New("subscription name must be at least 3 characters long")

	// ErrSubscriptionDetailsTooLong is returned when details exceed the maximum length.
	ErrSubscriptionDetailsTooLong = errors.New("subscription details cannot exceed 500 characters")

	// ErrInvalidSubscriptionCost is returned when the cost is below the minimum value.
	ErrInvalidSubscriptionCost = errors.New("subscription cost must be at least 0.01")

	// ErrInvalidRecurrence is returned when the recurrence is not one of the fixed kinds.
	ErrInvalidRecurrence = errors.New("invalid recurrence type")

	// ErrFuturePaymentDate is returned when the anchor payment date lies in the future.
	ErrFuturePaymentDate = errors.New("payment date cannot be in the future")

	// ErrPaymentDateTooOld is returned when the anchor payment date is more than one year past.
	ErrPaymentDateTooOld = errors.New("payment date cannot be more than 1 year in the past")

	// ErrSubscriptionLimitReached is returned when the user already has the maximum number of subscriptions.
	ErrSubscriptionLimitReached = errors.New("maximum number of active subscriptions reached")

	// ErrDuplicateSubscriptionName is returned when the user already has a subscription with the same name.
	ErrDuplicateSubscriptionName = errors.New("subscription with this name already exists")

	// ErrSubscriptionHasFutureTransactions is returned when an edit would invalidate
	// transactions already generated for future dates.
	ErrSubscriptionHasFutureTransactions = errors.New("subscription has future transactions scheduled")

	// ErrSubscriptionHasTransactions is returned when a delete is blocked by referencing transactions.
	ErrSubscriptionHasTransactions = errors.New("subscription has associated transactions")
)

// SubscriptionErrorCode defines error codes for subscription errors.
// Format: SUB-XXYYYY where XX is category and YYYY is specific error.
type SubscriptionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSubscriptionName      SubscriptionErrorCode = "SUB-010001"
	ErrCodeSubscriptionDetailsTooLong   SubscriptionErrorCode = "SUB-010002"
	ErrCodeInvalidSubscriptionCost      SubscriptionErrorCode = "SUB-010003"
	ErrCodeInvalidRecurrence            SubscriptionErrorCode = "SUB-010004"
	ErrCodeFuturePaymentDate            SubscriptionErrorCode = "SUB-010005"
	ErrCodePaymentDateTooOld            SubscriptionErrorCode = "SUB-010006"
	ErrCodeSubscriptionLimitReached     SubscriptionErrorCode = "SUB-010007"
	ErrCodeDuplicateSubscriptionName    SubscriptionErrorCode = "SUB-010008"
	ErrCodeSubscriptionNotFound         SubscriptionErrorCode = "SUB-010009"

	// Conflict errors (02XXXX)
	ErrCodeSubscriptionFutureConflict   SubscriptionErrorCode = "SUB-020001"
	ErrCodeSubscriptionHasTransactions  SubscriptionErrorCode = "SUB-020002"
)

// SubscriptionError represents a subscription error with code and message.
type SubscriptionError struct {
	Code    SubscriptionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubscriptionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

// NewSubscriptionError creates a new SubscriptionError with the given code and message.
func NewSubscriptionError(code SubscriptionErrorCode, message string, err error) *SubscriptionError {
	return &SubscriptionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
