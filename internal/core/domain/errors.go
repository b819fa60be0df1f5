package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these so callers can
// classify a failure with errors.Is without matching individual sentinels.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failure")
)

// Lookup errors
var (
	ErrMemberNotFound      = fmt.Errorf("%w: member not found", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction not found", ErrNotFound)
	ErrReceiptNotFound     = fmt.Errorf("%w: receipt not found", ErrNotFound)
)

// Registration errors
var (
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrMobileTaken   = fmt.Errorf("%w: mobile number already registered", ErrConflict)
	ErrInvalidMobile = fmt.Errorf("%w: invalid mobile number, must be 10 digits starting with 7, 8, or 9", ErrValidation)
)

// Ledger errors
var (
	ErrActiveLoanExists   = fmt.Errorf("%w: member already has an active loan, clear it first", ErrConflict)
	ErrNoActiveLoan       = fmt.Errorf("%w: member has no active loan", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	ErrUnknownTransaction = fmt.Errorf("%w: unknown transaction type", ErrValidation)
	ErrNoMembers          = fmt.Errorf("%w: no members found to distribute bonus", ErrValidation)
)

// Auth errors
var (
	ErrInvalidCredentials = fmt.Errorf("%w: incorrect email or password", ErrValidation)
)
