package repository

import (
	"database/sql"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for the append-only
// transaction log.
type ITransactionRepository interface {
	Append(record *model.TransactionRecord) error
	FindByID(id uuid.UUID) (*model.TransactionRecord, error)
	ListByAccount(accountNumber string, limit int) ([]*model.TransactionRecord, error)
	ListRecent(limit int) ([]*model.TransactionRecord, error)
	RecentActivity(since time.Time) (map[model.TransactionType]int, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Append(record *model.TransactionRecord) error {
	log := logger.Log.WithFields(logrus.Fields{
		"transaction_id": record.ID,
		"type":           record.Type,
		"amount":         record.Amount.StringFixed(2),
	})
	log.Info("Executing query to append transaction record")

	query := `INSERT INTO transactions (transaction_id, transaction_type, from_account, to_account, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.Exec(query, record.ID, record.Type, nullable(record.FromAccount),
		nullable(record.ToAccount), record.Amount, record.Description, record.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute append transaction query")
		return err
	}
	return nil
}

const transactionColumns = `transaction_id, transaction_type, from_account, to_account, amount, description, created_at`

func (r *TransactionRepository) FindByID(id uuid.UUID) (*model.TransactionRecord, error) {
	log := logger.Log.WithField("transaction_id", id)
	log.Info("Executing query to find transaction by ID")

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`
	record, err := scanTransaction(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Transaction not found")
		} else {
			log.WithError(err).Error("Failed to execute find transaction query")
		}
		return nil, err
	}
	return record, nil
}

// ListByAccount retrieves the most recent records referencing the
// account on either side.
func (r *TransactionRepository) ListByAccount(accountNumber string, limit int) ([]*model.TransactionRecord, error) {
	logger.Log.WithField("account_number", accountNumber).Info("Executing query to list transactions by account")

	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE from_account = $1 OR to_account = $1
		ORDER BY created_at DESC LIMIT $2`
	return r.queryTransactions(query, accountNumber, limit)
}

// ListRecent retrieves the most recent records across all accounts.
// For admin use only.
func (r *TransactionRepository) ListRecent(limit int) ([]*model.TransactionRecord, error) {
	logger.Log.Info("Executing query to list recent transactions")

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC LIMIT $1`
	return r.queryTransactions(query, limit)
}

// RecentActivity counts records per transaction type since the given
// time, feeding the admin statistics screen.
func (r *TransactionRepository) RecentActivity(since time.Time) (map[model.TransactionType]int, error) {
	logger.Log.WithField("since", since).Info("Executing query for recent transaction activity")

	query := `SELECT transaction_type, COUNT(*) FROM transactions WHERE created_at >= $1 GROUP BY transaction_type`
	rows, err := r.DB.Query(query, since)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute recent activity query")
		return nil, err
	}
	defer rows.Close()

	activity := make(map[model.TransactionType]int)
	for rows.Next() {
		var txType model.TransactionType
		var count int
		if err := rows.Scan(&txType, &count); err != nil {
			logger.Log.WithError(err).Error("Failed to scan activity row")
			return nil, err
		}
		activity[txType] = count
	}
	return activity, rows.Err()
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]*model.TransactionRecord, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute transaction list query")
		return nil, err
	}
	defer rows.Close()

	var records []*model.TransactionRecord
	for rows.Next() {
		record, err := scanTransaction(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanTransaction(row interface{ Scan(...interface{}) error }) (*model.TransactionRecord, error) {
	var (
		id          uuid.UUID
		txType      model.TransactionType
		from, to    sql.NullString
		amount      decimal.Decimal
		description string
		createdAt   time.Time
	)
	if err := row.Scan(&id, &txType, &from, &to, &amount, &description, &createdAt); err != nil {
		return nil, err
	}
	return model.RehydrateTransactionRecord(id, txType, optional(from), optional(to), amount, description, createdAt), nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func optional(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
