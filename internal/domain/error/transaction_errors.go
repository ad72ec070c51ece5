// Package error defines domain-specific errors for the CoinKeeper application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("transaction type must be INCOME or EXPENSE")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrInvalidTransactionName is returned when the transaction name is too short.
	ErrInvalidTransactionName = errors.New("transaction name must be at least 3 characters long")

	// ErrTransactionDetailsTooLong is returned when details exceed the maximum length.
	ErrTransactionDetailsTooLong = errors.New("transaction details cannot exceed 500 characters")

	// ErrConflictingProvenance is returned when a transaction carries both a
	// subscription and an installment provenance link.
	ErrConflictingProvenance = errors.New("transaction cannot reference both a subscription and an installment")

	// ErrNotAuthorizedToModifyTransaction is returned when the user does not own the transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionName   TransactionErrorCode = "TXN-010004"
	ErrCodeConflictingProvenance    TransactionErrorCode = "TXN-010005"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010006"
	ErrCodeTransactionDetailsLong   TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
