package model

import "github.com/shopspring/decimal"

// SystemStats is the aggregate view the admin statistics screen shows.
type SystemStats struct {
	TotalAccounts   int
	TotalBalance    decimal.Decimal
	AverageBalance  decimal.Decimal
	ActiveAccounts  int
	FrozenAccounts  int
	SavingsAccounts int
	CurrentAccounts int
}
