package cli

import (
	"errors"
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func (c *CLI) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (c *CLI) readChoice(prompt string) int {
	choice, err := strconv.Atoi(c.readLine(prompt))
	if err != nil {
		return -1
	}
	return choice
}

// readAmount prompts until a valid monetary amount is entered or the
// user gives up with an empty line.
func (c *CLI) readAmount(prompt string) (decimal.Decimal, bool) {
	for {
		input := c.readLine(prompt)
		if input == "" {
			return decimal.Decimal{}, false
		}
		amount, err := model.ParseAmount(input)
		if err != nil {
			fmt.Fprintln(c.out, "Amount must be positive with at most 2 decimal places.")
			continue
		}
		return amount, true
	}
}

// showError renders a business failure as a friendly message and
// anything else as a logged application error.
func (c *CLI) showError(err error) {
	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrSameAccountTransfer),
		errors.Is(err, service.ErrAccountFrozen),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrTransactionNotFound):
		fmt.Fprintf(c.out, "Error: %s\n", err)
	case errors.Is(err, service.ErrPersistence):
		common.NewAppError("The operation could not be saved. Please try again later.", err).Display()
	default:
		common.NewAppError("Something went wrong.", err).Display()
	}
}
