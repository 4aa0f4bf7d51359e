package cli

import (
	"fmt"
	"go-bank-ledger/model"
)

const timeLayout = "2006-01-02 15:04:05"

func (c *CLI) renderAccount(a *model.Account) {
	fmt.Fprintln(c.out, "\n=== Account Details ===")
	fmt.Fprintf(c.out, "Account Number: %s\n", a.AccountNumber)
	fmt.Fprintf(c.out, "Holder Name:    %s\n", a.HolderName)
	fmt.Fprintf(c.out, "Email:          %s\n", a.Email)
	fmt.Fprintf(c.out, "Phone:          %s\n", a.Phone)
	fmt.Fprintf(c.out, "IFSC:           %s\n", a.IFSC)
	fmt.Fprintf(c.out, "Type:           %s\n", a.AccountType)
	fmt.Fprintf(c.out, "Status:         %s\n", a.Status)
	fmt.Fprintf(c.out, "Balance:        %s\n", a.Balance.StringFixed(2))
	fmt.Fprintf(c.out, "Created:        %s\n", a.CreatedAt.Format(timeLayout))
	fmt.Fprintf(c.out, "Last Activity:  %s\n", a.LastActivity.Format(timeLayout))
}

func (c *CLI) renderAccountTable(accounts []*model.Account) {
	if len(accounts) == 0 {
		fmt.Fprintln(c.out, "No accounts found.")
		return
	}
	fmt.Fprintf(c.out, "%-12s %-25s %-10s %-8s %12s\n", "Number", "Holder", "Type", "Status", "Balance")
	for _, a := range accounts {
		fmt.Fprintf(c.out, "%-12s %-25s %-10s %-8s %12s\n",
			a.AccountNumber, a.HolderName, a.AccountType, a.Status, a.Balance.StringFixed(2))
	}
	fmt.Fprintf(c.out, "%d account(s)\n", len(accounts))
}

func (c *CLI) renderTransactions(records []*model.TransactionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No transactions found.")
		return
	}
	fmt.Fprintf(c.out, "%-12s %-9s %-12s %-12s %10s %-20s %s\n",
		"ID", "Type", "From", "To", "Amount", "Timestamp", "Description")
	for _, r := range records {
		fmt.Fprintf(c.out, "%-12s %-9s %-12s %-12s %10s %-20s %s\n",
			shortID(r.ID.String()), r.Type, orDash(r.FromAccount), orDash(r.ToAccount),
			r.Amount.StringFixed(2), r.CreatedAt.Format(timeLayout), r.Description)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
