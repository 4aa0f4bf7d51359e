package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxDeposit  TransactionType = "DEPOSIT"
	TxWithdraw TransactionType = "WITHDRAW"
	TxTransfer TransactionType = "TRANSFER"
)

// TransactionRecord is the immutable audit entry for one completed
// monetary movement. FromAccount is nil for deposits, ToAccount is nil
// for withdrawals, and both are set for transfers. Records are created
// exactly once per movement, after the balance change has been
// persisted, and are never mutated afterwards.
type TransactionRecord struct {
	ID          uuid.UUID       `json:"id"`
	Type        TransactionType `json:"type"`
	FromAccount *string         `json:"from_account,omitempty"`
	ToAccount   *string         `json:"to_account,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	Description string          `json:"description"`
}

// NewTransactionRecord allocates a fresh identity and timestamp for a
// completed movement. The amount must already have passed the shared
// amount validation; it is re-checked here so a record can never exist
// for a non-positive movement.
func NewTransactionRecord(txType TransactionType, from, to *string, amount decimal.Decimal, description string) (*TransactionRecord, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return &TransactionRecord{
		ID:          uuid.New(),
		Type:        txType,
		FromAccount: from,
		ToAccount:   to,
		Amount:      amount,
		CreatedAt:   time.Now(),
		Description: description,
	}, nil
}

// RehydrateTransactionRecord rebuilds a record from its stored fields.
// This is the only path that sets ID and CreatedAt explicitly.
func RehydrateTransactionRecord(id uuid.UUID, txType TransactionType, from, to *string, amount decimal.Decimal, description string, createdAt time.Time) *TransactionRecord {
	return &TransactionRecord{
		ID:          id,
		Type:        txType,
		FromAccount: from,
		ToAccount:   to,
		Amount:      amount,
		CreatedAt:   createdAt,
		Description: description,
	}
}

// InvolvesAccount reports whether the record references the given
// account number on either side.
func (r *TransactionRecord) InvolvesAccount(accountNumber string) bool {
	if r.FromAccount != nil && *r.FromAccount == accountNumber {
		return true
	}
	if r.ToAccount != nil && *r.ToAccount == accountNumber {
		return true
	}
	return false
}
