// Package error defines domain-specific errors for the CoinKeeper application.
package error

import "errors"

// Account domain errors.
var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidAccountName     = errors.New("account name must be at least 2 characters long")
	ErrDuplicateAccountName   = errors.New("account with this name already exists")
	ErrAccountHasTransactions = errors.New("account has associated transactions")
)

// Category domain errors.
var (
	ErrCategoryNotFound        = errors.New("category not found")
	ErrInvalidCategoryName     = errors.New("category name must be at least 2 characters long")
	ErrDuplicateCategoryName   = errors.New("category with this name already exists")
	ErrInvalidCategoryColor    = errors.New("category color must be a hex color code")
	ErrCategoryHasTransactions = errors.New("category has associated transactions")
)
