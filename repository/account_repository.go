package repository

import (
	"database/sql"
	"fmt"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account persistence.
type IAccountRepository interface {
	CreateAccount(account *model.Account, passwordHash string) error
	FindByNumber(accountNumber string) (*model.Account, error)
	ListAll() ([]*model.Account, error)
	SearchByName(fragment string) ([]*model.Account, error)
	SaveBalance(accountNumber string, balance decimal.Decimal) error
	UpdateStatus(accountNumber string, status model.AccountStatus) error
	UpdateField(accountNumber, column, value string) error
	DeleteAccount(accountNumber string) error
	NextAccountNumber() (string, error)
	GetPasswordHash(accountNumber string) (string, error)
	Statistics() (*model.SystemStats, error)
}

// AccountRepository implements IAccountRepository over Postgres.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = `account_number, holder_name, email, phone, ifsc, balance, account_type, status, created_at, last_activity`

func scanAccount(row interface{ Scan(...interface{}) error }) (*model.Account, error) {
	var acc model.Account
	err := row.Scan(&acc.AccountNumber, &acc.HolderName, &acc.Email, &acc.Phone, &acc.IFSC,
		&acc.Balance, &acc.AccountType, &acc.Status, &acc.CreatedAt, &acc.LastActivity)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateAccount inserts a new account row together with its credential
// hash. The account number must already have been issued by
// NextAccountNumber.
func (r *AccountRepository) CreateAccount(account *model.Account, passwordHash string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"account_type":   account.AccountType,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (account_number, holder_name, email, phone, ifsc, balance, password_hash, account_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, last_activity`
	err := r.DB.QueryRow(query, account.AccountNumber, account.HolderName, account.Email,
		account.Phone, account.IFSC, account.Balance, passwordHash, account.AccountType,
		account.Status).Scan(&account.CreatedAt, &account.LastActivity)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// FindByNumber retrieves a single account. Returns sql.ErrNoRows when
// the account number is unknown; the services map that to their own
// not-found failure.
func (r *AccountRepository) FindByNumber(accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Debug("Executing query to find account by number")

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	account, err := scanAccount(r.DB.QueryRow(query, accountNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found")
		} else {
			log.WithError(err).Error("Failed to execute find account query")
		}
		return nil, err
	}
	return account, nil
}

// ListAll retrieves every account, newest first. For admin use only.
func (r *AccountRepository) ListAll() ([]*model.Account, error) {
	logger.Log.Info("Executing query to list all accounts")

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`
	return r.queryAccounts(query)
}

// SearchByName retrieves accounts whose holder name contains the
// fragment, case-insensitively.
func (r *AccountRepository) SearchByName(fragment string) ([]*model.Account, error) {
	logger.Log.WithField("fragment", fragment).Info("Executing query to search accounts by holder name")

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE holder_name ILIKE $1 ORDER BY holder_name`
	return r.queryAccounts(query, "%"+fragment+"%")
}

func (r *AccountRepository) queryAccounts(query string, args ...interface{}) ([]*model.Account, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute account list query")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// SaveBalance persists a new balance and bumps last_activity in the
// same statement.
func (r *AccountRepository) SaveBalance(accountNumber string, balance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"new_balance":    balance.StringFixed(2),
	})
	log.Info("Executing query to save account balance")

	query := `UPDATE accounts SET balance = $1, last_activity = CURRENT_TIMESTAMP WHERE account_number = $2`
	result, err := r.DB.Exec(query, balance, accountNumber)
	if err != nil {
		log.WithError(err).Error("Failed to execute save balance query")
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *AccountRepository) UpdateStatus(accountNumber string, status model.AccountStatus) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"status":         status,
	})
	log.Info("Executing query to update account status")

	query := `UPDATE accounts SET status = $1 WHERE account_number = $2`
	result, err := r.DB.Exec(query, status, accountNumber)
	if err != nil {
		log.WithError(err).Error("Failed to execute update status query")
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// updatableColumns whitelists the columns the admin contact-update
// screen may touch. UpdateField refuses anything else.
var updatableColumns = map[string]bool{
	"holder_name": true,
	"email":       true,
	"phone":       true,
	"ifsc":        true,
}

func (r *AccountRepository) UpdateField(accountNumber, column, value string) error {
	if !updatableColumns[column] {
		return fmt.Errorf("column %q is not updatable", column)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"column":         column,
	})
	log.Info("Executing query to update account field")

	query := fmt.Sprintf(`UPDATE accounts SET %s = $1 WHERE account_number = $2`, column)
	result, err := r.DB.Exec(query, value, accountNumber)
	if err != nil {
		log.WithError(err).Error("Failed to execute update field query")
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteAccount removes an account and its transaction rows in one
// database transaction.
func (r *AccountRepository) DeleteAccount(accountNumber string) error {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Warn("Executing queries to delete account and its transactions")

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM transactions WHERE from_account = $1 OR to_account = $1`, accountNumber); err != nil {
		log.WithError(err).Error("Failed to delete account transactions")
		return err
	}

	result, err := tx.Exec(`DELETE FROM accounts WHERE account_number = $1`, accountNumber)
	if err != nil {
		log.WithError(err).Error("Failed to delete account row")
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// NextAccountNumber atomically increments the shared sequence and
// formats the result as a 10-digit zero-padded string. The row lock
// serializes account creation; a known limit if concurrent sessions
// are ever introduced.
func (r *AccountRepository) NextAccountNumber() (string, error) {
	logger.Log.Info("Executing queries to issue next account number")

	tx, err := r.DB.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var last int64
	if err := tx.QueryRow(`SELECT last_account_number FROM account_sequence FOR UPDATE`).Scan(&last); err != nil {
		logger.Log.WithError(err).Error("Failed to read account sequence")
		return "", err
	}

	next := last + 1
	if _, err := tx.Exec(`UPDATE account_sequence SET last_account_number = $1`, next); err != nil {
		logger.Log.WithError(err).Error("Failed to advance account sequence")
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%010d", next), nil
}

func (r *AccountRepository) GetPasswordHash(accountNumber string) (string, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Debug("Executing query to fetch credential hash")

	var hash string
	err := r.DB.QueryRow(`SELECT password_hash FROM accounts WHERE account_number = $1`, accountNumber).Scan(&hash)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to fetch credential hash")
		}
		return "", err
	}
	return hash, nil
}

// Statistics aggregates the account table for the admin dashboard.
func (r *AccountRepository) Statistics() (*model.SystemStats, error) {
	logger.Log.Info("Executing query for system statistics")

	query := `SELECT
		COUNT(*),
		COALESCE(SUM(balance), 0),
		COALESCE(AVG(balance), 0),
		COUNT(*) FILTER (WHERE status = 'ACTIVE'),
		COUNT(*) FILTER (WHERE status = 'FROZEN'),
		COUNT(*) FILTER (WHERE account_type = 'SAVINGS'),
		COUNT(*) FILTER (WHERE account_type = 'CURRENT')
		FROM accounts`

	var stats model.SystemStats
	err := r.DB.QueryRow(query).Scan(&stats.TotalAccounts, &stats.TotalBalance, &stats.AverageBalance,
		&stats.ActiveAccounts, &stats.FrozenAccounts, &stats.SavingsAccounts, &stats.CurrentAccounts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute statistics query")
		return nil, err
	}
	return &stats, nil
}
