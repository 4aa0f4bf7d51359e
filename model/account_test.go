package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("increases balance by exactly the amount", func(t *testing.T) {
		acc := &Account{AccountNumber: "0000001001", Balance: dec("100.00"), Status: StatusActive}

		err := acc.Deposit(dec("50.25"))

		assert.NoError(t, err)
		assert.True(t, acc.Balance.Equal(dec("150.25")), "balance is %s", acc.Balance)
	})

	t.Run("updates last activity", func(t *testing.T) {
		acc := &Account{Balance: dec("10.00")}
		before := acc.LastActivity

		err := acc.Deposit(dec("1.00"))

		assert.NoError(t, err)
		assert.True(t, acc.LastActivity.After(before))
	})

	t.Run("invalid amounts leave balance unchanged", func(t *testing.T) {
		cases := map[string]decimal.Decimal{
			"zero":           dec("0"),
			"negative":       dec("-10.00"),
			"over precision": dec("10.123"),
		}
		for name, amount := range cases {
			t.Run(name, func(t *testing.T) {
				acc := &Account{Balance: dec("100.00")}

				err := acc.Deposit(amount)

				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.True(t, acc.Balance.Equal(dec("100.00")))
			})
		}
	})

	t.Run("no upper bound on balance", func(t *testing.T) {
		acc := &Account{Balance: dec("999999999999.99")}

		err := acc.Deposit(dec("0.01"))

		assert.NoError(t, err)
		assert.True(t, acc.Balance.Equal(dec("1000000000000.00")))
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("decreases balance by exactly the amount", func(t *testing.T) {
		acc := &Account{Balance: dec("150.25")}

		err := acc.Withdraw(dec("100.00"))

		assert.NoError(t, err)
		assert.True(t, acc.Balance.Equal(dec("50.25")))
	})

	t.Run("whole balance can be withdrawn", func(t *testing.T) {
		acc := &Account{Balance: dec("42.42")}

		err := acc.Withdraw(dec("42.42"))

		assert.NoError(t, err)
		assert.True(t, acc.Balance.IsZero())
	})

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		acc := &Account{Balance: dec("150.25"), LastActivity: time.Now()}
		before := acc.LastActivity

		err := acc.Withdraw(dec("200.00"))

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, acc.Balance.Equal(dec("150.25")))
		assert.Equal(t, before, acc.LastActivity)
	})

	t.Run("invalid amounts rejected before the funds check", func(t *testing.T) {
		acc := &Account{Balance: dec("100.00")}

		err := acc.Withdraw(dec("-5.00"))

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, acc.Balance.Equal(dec("100.00")))
	})
}

func TestParseAmount(t *testing.T) {
	t.Run("accepts valid amounts", func(t *testing.T) {
		for _, input := range []string{"50.25", "1", "0.01", "100.5"} {
			amount, err := ParseAmount(input)
			assert.NoError(t, err, "input %q", input)
			assert.True(t, amount.Sign() > 0)
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		for _, input := range []string{"", "abc", "0", "-10", "10.123", "1e5", "2E2"} {
			_, err := ParseAmount(input)
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", input)
		}
	})
}
