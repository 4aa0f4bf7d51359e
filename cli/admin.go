package cli

import (
	"fmt"
	"go-bank-ledger/model"
)

func (c *CLI) runAdminMenu() {
	for {
		fmt.Fprintln(c.out, "\n--- Admin Menu ---")
		fmt.Fprintln(c.out, "1. List All Accounts")
		fmt.Fprintln(c.out, "2. Search Account by Number")
		fmt.Fprintln(c.out, "3. Search Accounts by Name")
		fmt.Fprintln(c.out, "4. System Statistics")
		fmt.Fprintln(c.out, "5. Recent Transactions")
		fmt.Fprintln(c.out, "6. Manage Account")
		fmt.Fprintln(c.out, "7. Find Transaction by ID")
		fmt.Fprintln(c.out, "8. Logout")

		switch c.readChoice("Select an option: ") {
		case 1:
			c.listAccounts()
		case 2:
			c.searchByNumber()
		case 3:
			c.searchByName()
		case 4:
			c.systemStatistics()
		case 5:
			c.recentTransactions()
		case 6:
			c.manageAccount()
		case 7:
			c.findTransaction()
		case 8:
			return
		default:
			fmt.Fprintln(c.out, "Invalid option, please try again.")
		}
	}
}

func (c *CLI) listAccounts() {
	accounts, err := c.admin.ListAccounts()
	if err != nil {
		c.showError(err)
		return
	}
	c.renderAccountTable(accounts)
}

func (c *CLI) searchByNumber() {
	account, err := c.accounts.GetAccount(c.readLine("Account number: "))
	if err != nil {
		c.showError(err)
		return
	}
	c.renderAccount(account)
}

func (c *CLI) searchByName() {
	accounts, err := c.admin.SearchAccounts(c.readLine("Holder name contains: "))
	if err != nil {
		c.showError(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(c.out, "No matching accounts found.")
		return
	}
	c.renderAccountTable(accounts)
}

func (c *CLI) systemStatistics() {
	stats, err := c.admin.Statistics()
	if err != nil {
		c.showError(err)
		return
	}

	fmt.Fprintln(c.out, "\n=== System Statistics ===")
	fmt.Fprintf(c.out, "Total Accounts:   %d\n", stats.Accounts.TotalAccounts)
	fmt.Fprintf(c.out, "Total Balance:    %s\n", stats.Accounts.TotalBalance.StringFixed(2))
	fmt.Fprintf(c.out, "Average Balance:  %s\n", stats.Accounts.AverageBalance.StringFixed(2))
	fmt.Fprintf(c.out, "Active Accounts:  %d\n", stats.Accounts.ActiveAccounts)
	fmt.Fprintf(c.out, "Frozen Accounts:  %d\n", stats.Accounts.FrozenAccounts)
	fmt.Fprintf(c.out, "Savings Accounts: %d\n", stats.Accounts.SavingsAccounts)
	fmt.Fprintf(c.out, "Current Accounts: %d\n", stats.Accounts.CurrentAccounts)

	fmt.Fprintln(c.out, "\n=== Activity (last 7 days) ===")
	if len(stats.Activity) == 0 {
		fmt.Fprintln(c.out, "No recent transactions.")
		return
	}
	for _, txType := range []model.TransactionType{model.TxDeposit, model.TxWithdraw, model.TxTransfer} {
		if count, ok := stats.Activity[txType]; ok {
			fmt.Fprintf(c.out, "%s transactions: %d\n", txType, count)
		}
	}
}

func (c *CLI) recentTransactions() {
	records, err := c.admin.RecentTransactions(50)
	if err != nil {
		c.showError(err)
		return
	}
	c.renderTransactions(records)
}

func (c *CLI) findTransaction() {
	record, err := c.admin.FindTransaction(c.readLine("Transaction ID: "))
	if err != nil {
		c.showError(err)
		return
	}
	c.renderTransactions([]*model.TransactionRecord{record})
}

func (c *CLI) manageAccount() {
	accountNumber := c.readLine("Account number to manage: ")
	if _, err := c.accounts.GetAccount(accountNumber); err != nil {
		c.showError(err)
		return
	}

	for {
		fmt.Fprintf(c.out, "\n--- Manage Account %s ---\n", accountNumber)
		fmt.Fprintln(c.out, "1. View Details")
		fmt.Fprintln(c.out, "2. View Transaction History")
		fmt.Fprintln(c.out, "3. Force Deposit")
		fmt.Fprintln(c.out, "4. Force Withdrawal")
		fmt.Fprintln(c.out, "5. Update Contact Information")
		fmt.Fprintln(c.out, "6. Freeze/Unfreeze Account")
		fmt.Fprintln(c.out, "7. Delete Account")
		fmt.Fprintln(c.out, "8. Back")

		switch c.readChoice("Select an option: ") {
		case 1:
			c.accountDetails(accountNumber)
		case 2:
			c.history(accountNumber)
		case 3:
			c.forceMutation(accountNumber, true)
		case 4:
			c.forceMutation(accountNumber, false)
		case 5:
			c.updateContact(accountNumber)
		case 6:
			c.toggleStatus(accountNumber)
		case 7:
			if c.deleteAccount(accountNumber) {
				return
			}
		case 8:
			return
		default:
			fmt.Fprintln(c.out, "Invalid option, please try again.")
		}
	}
}

func (c *CLI) forceMutation(accountNumber string, isDeposit bool) {
	amount, ok := c.readAmount("Amount: ")
	if !ok {
		return
	}
	reason := c.readLine("Reason: ")

	var err error
	if isDeposit {
		_, err = c.accounts.Deposit(accountNumber, amount, "Admin adjustment: "+reason)
	} else {
		_, err = c.accounts.Withdraw(accountNumber, amount, "Admin adjustment: "+reason)
	}
	if err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintln(c.out, "Adjustment applied.")
}

func (c *CLI) updateContact(accountNumber string) {
	fmt.Fprintln(c.out, "Leave a field empty to keep its current value.")
	req := model.UpdateContactRequest{
		HolderName: c.readLine("Holder name: "),
		Email:      c.readLine("Email: "),
		Phone:      c.readLine("Phone: "),
		IFSC:       c.readLine("IFSC: "),
	}
	if err := c.admin.UpdateContact(accountNumber, req); err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintln(c.out, "Contact information updated.")
}

func (c *CLI) toggleStatus(accountNumber string) {
	account, err := c.accounts.GetAccount(accountNumber)
	if err != nil {
		c.showError(err)
		return
	}

	newStatus := model.StatusFrozen
	if account.IsFrozen() {
		newStatus = model.StatusActive
	}
	if err := c.admin.SetAccountStatus(accountNumber, newStatus); err != nil {
		c.showError(err)
		return
	}
	fmt.Fprintf(c.out, "Account status is now %s.\n", newStatus)
}

func (c *CLI) deleteAccount(accountNumber string) bool {
	if c.readLine("Type DELETE to confirm account deletion: ") != "DELETE" {
		fmt.Fprintln(c.out, "Deletion cancelled.")
		return false
	}
	if err := c.admin.DeleteAccount(accountNumber); err != nil {
		c.showError(err)
		return false
	}
	fmt.Fprintln(c.out, "Account deleted.")
	return true
}
