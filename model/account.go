package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Business failures surfaced by the account entity. Callers further up
// the stack propagate these verbatim.
var (
	ErrInvalidAmount     = errors.New("amount must be positive with at most 2 decimal places")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type AccountStatus string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusFrozen AccountStatus = "FROZEN"
)

type AccountType string

const (
	TypeSavings AccountType = "SAVINGS"
	TypeCurrent AccountType = "CURRENT"
)

// Account is the in-memory representation of one bank account. The
// account number is assigned once from the shared sequence and never
// changes. Balance is an exact decimal with scale 2 and is never
// negative after a successful mutation.
//
// The entity does not check its own Status; the services reject
// mutations on frozen accounts before calling Deposit or Withdraw.
type Account struct {
	AccountNumber string          `json:"account_number"`
	HolderName    string          `json:"holder_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	IFSC          string          `json:"ifsc"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   AccountType     `json:"account_type"`
	Status        AccountStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	LastActivity  time.Time       `json:"last_activity"`
}

// ValidateAmount enforces the monetary amount rule shared by every
// mutation: strictly positive, at most 2 fractional digits. Amounts
// with more precision are rejected, never rounded.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.Exponent() < -2 {
		return ErrInvalidAmount
	}
	return nil
}

// ParseAmount converts the external decimal-string representation into
// an exact amount. Scientific notation and over-precision inputs fail
// with ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	for _, r := range s {
		if r == 'e' || r == 'E' {
			return decimal.Decimal{}, ErrInvalidAmount
		}
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// Deposit increases the balance by exactly amount. There is no upper
// bound on the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	a.LastActivity = time.Now()
	return nil
}

// Withdraw decreases the balance by exactly amount. Fails with
// ErrInsufficientFunds when amount exceeds the balance, leaving the
// balance unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.LastActivity = time.Now()
	return nil
}

func (a *Account) IsFrozen() bool {
	return a.Status == StatusFrozen
}
