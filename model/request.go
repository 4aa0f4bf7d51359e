package model

import "github.com/shopspring/decimal"

// OpenAccountRequest carries the already-prompted inputs for opening a
// new account. The struct tags mirror the input rules enforced by the
// console prompts: 10-digit phone, strong password, known account type.
type OpenAccountRequest struct {
	HolderName     string          `validate:"required,min=2,max=100"`
	Email          string          `validate:"required,email"`
	Phone          string          `validate:"required,len=10,numeric"`
	IFSC           string          `validate:"required,alphanum,len=11"`
	AccountType    AccountType     `validate:"required,oneof=SAVINGS CURRENT"`
	Password       string          `validate:"required,strongpassword"`
	InitialDeposit decimal.Decimal `validate:"-"`
}

// UpdateContactRequest carries the admin-editable contact fields.
// Empty fields are left untouched.
type UpdateContactRequest struct {
	HolderName string `validate:"omitempty,min=2,max=100"`
	Email      string `validate:"omitempty,email"`
	Phone      string `validate:"omitempty,len=10,numeric"`
	IFSC       string `validate:"omitempty,alphanum,len=11"`
}
