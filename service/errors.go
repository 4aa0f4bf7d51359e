package service

import "errors"

// Business failures added by the orchestration layer. Amount and funds
// failures come from the account entity (model.ErrInvalidAmount,
// model.ErrInsufficientFunds) and are propagated verbatim.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrSameAccountTransfer = errors.New("cannot transfer money to the same account")
	ErrAccountFrozen       = errors.New("account is frozen")
	ErrInvalidCredentials  = errors.New("invalid account number or password")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPersistence marks store failures. It is deliberately distinct
	// from every business failure so a failed write can never be
	// mistaken for insufficient funds or an invalid amount.
	ErrPersistence = errors.New("persistence failure")
)
