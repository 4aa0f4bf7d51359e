package cli

import (
	"fmt"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
)

const historyLimit = 20

func (c *CLI) createAccount() {
	fmt.Fprintln(c.out, "\n--- Open a New Account ---")

	req := model.OpenAccountRequest{
		HolderName:  c.readLine("Holder name: "),
		Email:       c.readLine("Email: "),
		Phone:       c.readLine("Phone (10 digits): "),
		IFSC:        c.readLine("IFSC code: "),
		AccountType: model.AccountType(c.readLine("Account type (SAVINGS/CURRENT): ")),
		Password:    c.readLine("Password: "),
	}

	initial, ok := c.readAmount("Initial deposit (empty for none): ")
	if ok {
		req.InitialDeposit = initial
	}

	account, err := c.accounts.OpenAccount(req)
	if err != nil {
		c.showError(err)
		return
	}

	fmt.Fprintf(c.out, "\nAccount created successfully!\n")
	fmt.Fprintf(c.out, "Your account number is: %s\n", account.AccountNumber)
	fmt.Fprintf(c.out, "Opening balance: %s\n", account.Balance.StringFixed(2))
}

func (c *CLI) runAccountMenu(accountNumber, token string) {
	for {
		// The session token expires after an hour; re-validate on
		// every loop so a stale session drops back to the main menu.
		if _, err := service.ValidateSessionToken(token); err != nil {
			fmt.Fprintln(c.out, "Session expired, please log in again.")
			return
		}

		fmt.Fprintf(c.out, "\n--- Account Menu (%s) ---\n", accountNumber)
		fmt.Fprintln(c.out, "1. Check Balance")
		fmt.Fprintln(c.out, "2. Deposit")
		fmt.Fprintln(c.out, "3. Withdraw")
		fmt.Fprintln(c.out, "4. Transfer")
		fmt.Fprintln(c.out, "5. Transaction History")
		fmt.Fprintln(c.out, "6. Account Details")
		fmt.Fprintln(c.out, "7. Logout")

		switch c.readChoice("Select an option: ") {
		case 1:
			c.checkBalance(accountNumber)
		case 2:
			c.deposit(accountNumber)
		case 3:
			c.withdraw(accountNumber)
		case 4:
			c.transfer(accountNumber)
		case 5:
			c.history(accountNumber)
		case 6:
			c.accountDetails(accountNumber)
		case 7:
			return
		default:
			fmt.Fprintln(c.out, "Invalid option, please try again.")
		}
	}
}

func (c *CLI) checkBalance(accountNumber string) {
	account, err := c.accounts.GetAccount(accountNumber)
	if err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintf(c.out, "Current balance: %s\n", account.Balance.StringFixed(2))
}

func (c *CLI) deposit(accountNumber string) {
	amount, ok := c.readAmount("Deposit amount: ")
	if !ok {
		return
	}
	balance, err := c.accounts.Deposit(accountNumber, amount, "Cash deposit")
	if err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintf(c.out, "Deposit successful. New balance: %s\n", balance.StringFixed(2))
}

func (c *CLI) withdraw(accountNumber string) {
	amount, ok := c.readAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	balance, err := c.accounts.Withdraw(accountNumber, amount, "Cash withdrawal")
	if err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintf(c.out, "Withdrawal successful. New balance: %s\n", balance.StringFixed(2))
}

func (c *CLI) transfer(fromAccount string) {
	toAccount := c.readLine("Destination account number: ")
	amount, ok := c.readAmount("Transfer amount: ")
	if !ok {
		return
	}
	description := c.readLine("Description (optional): ")
	if description == "" {
		description = "Funds transfer"
	}

	record, err := c.transfers.Transfer(fromAccount, toAccount, amount, description)
	if err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintf(c.out, "Transfer successful. Transaction ID: %s\n", record.ID)
}

func (c *CLI) history(accountNumber string) {
	records, err := c.accounts.History(accountNumber, historyLimit)
	if err != nil {
		c.showError(err)
		return
	}
	c.renderTransactions(records)
}

func (c *CLI) accountDetails(accountNumber string) {
	account, err := c.accounts.GetAccount(accountNumber)
	if err != nil {
		c.showError(err)
		return
	}
	c.renderAccount(account)
}
