package cli

import (
	"bufio"
	"fmt"
	"go-bank-ledger/logger"
	"go-bank-ledger/service"
	"io"
	"os"
)

// CLI drives the interactive console session. It owns no business
// logic: every action validates prompted input, calls a service and
// renders the outcome.
type CLI struct {
	in        *bufio.Reader
	out       io.Writer
	accounts  *service.AccountService
	transfers *service.TransferService
	admin     *service.AdminService
}

func New(accounts *service.AccountService, transfers *service.TransferService, admin *service.AdminService) *CLI {
	return &CLI{
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		accounts:  accounts,
		transfers: transfers,
		admin:     admin,
	}
}

// Run loops on the main menu until the user exits.
func (c *CLI) Run() {
	fmt.Fprintln(c.out, "=== Welcome to the Banking System ===")
	for {
		fmt.Fprintln(c.out, "\n--- Main Menu ---")
		fmt.Fprintln(c.out, "1. Create Account")
		fmt.Fprintln(c.out, "2. Login to Account")
		fmt.Fprintln(c.out, "3. Admin Login")
		fmt.Fprintln(c.out, "4. Exit")

		switch c.readChoice("Select an option: ") {
		case 1:
			c.createAccount()
		case 2:
			c.login()
		case 3:
			c.adminLogin()
		case 4:
			fmt.Fprintln(c.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option, please try again.")
		}
	}
}

func (c *CLI) login() {
	number := c.readLine("Account number: ")
	password := c.readLine("Password: ")

	token, err := c.accounts.Authenticate(number, password)
	if err != nil {
		c.showError(err)
		return
	}
	logger.Log.WithField("account_number", number).Info("Customer session started")
	c.runAccountMenu(number, token)
}

func (c *CLI) adminLogin() {
	username := c.readLine("Admin username: ")
	password := c.readLine("Admin password: ")

	if !c.admin.VerifyAdmin(username, password) {
		fmt.Fprintln(c.out, "Invalid admin credentials.")
		return
	}
	logger.Log.WithField("username", username).Info("Admin session started")
	c.runAdminMenu()
}
