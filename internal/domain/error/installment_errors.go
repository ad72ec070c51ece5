// Package error defines domain-specific errors for the CoinKeeper application.
package error

import "errors"

// Installment domain errors.
var (
	ErrInstallmentNotFound        = errors.New("installment not found")
	ErrInvalidInstallmentName     = errors.New("installment name must be at least 3 characters long")
	ErrInstallmentDetailsTooLong  = errors.New("installment details cannot exceed 500 characters")
	ErrInvalidInstallmentCost     = errors.New("installment cost must be at least 0.01")
	ErrTooFewInstallments         = errors.New("total installments must be at least 2")
	ErrTooManyInstallments        = errors.New("total installments cannot exceed 48")
	ErrInvalidRemainingCount      = errors.New("remaining installments must be between 0 and the total")
	ErrInstallmentValueTooSmall   = errors.New("each installment value must be at least 0.01")
	ErrInstallmentLimitReached    = errors.New("maximum number of active installments reached")
	ErrInstallmentHasTransactions = errors.New("installment has associated transactions")
)

// InstallmentErrorCode defines error codes for installment errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstallmentErrorCode string

const (
	ErrCodeInvalidInstallmentName     InstallmentErrorCode = "INS-010001"
	ErrCodeInstallmentDetailsTooLong  InstallmentErrorCode = "INS-010002"
	ErrCodeInvalidInstallmentCost     InstallmentErrorCode = "INS-010003"
	ErrCodeTooFewInstallments         InstallmentErrorCode = "INS-010004"
	ErrCodeTooManyInstallments        InstallmentErrorCode = "INS-010005"
	ErrCodeInvalidRemainingCount      InstallmentErrorCode = "INS-010006"
	ErrCodeInstallmentValueTooSmall   InstallmentErrorCode = "INS-010007"
	ErrCodeInstallmentLimitReached    InstallmentErrorCode = "INS-010008"
	ErrCodeInstallmentNotFound        InstallmentErrorCode = "INS-010009"
	ErrCodeInstallmentFutureDate      InstallmentErrorCode = "INS-010010"
	ErrCodeInstallmentDateTooOld      InstallmentErrorCode = "INS-010011"
	ErrCodeInstallmentHasTransactions InstallmentErrorCode = "INS-020001"
)

// InstallmentError represents an installment error with code and message.
type InstallmentError struct {
	Code    InstallmentErrorCode
	Message string
	Err     error
}

func (e *InstallmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InstallmentError) Unwrap() error {
	return e.Err
}

// NewInstallmentError creates a new InstallmentError with the given code and message.
func NewInstallmentError(code InstallmentErrorCode, message string, err error) *InstallmentError {
	return &InstallmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
