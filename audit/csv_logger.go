package audit

import (
	"encoding/csv"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"os"
	"sync"
	"time"
)

var csvHeader = []string{"TransactionID", "Type", "FromAccount", "ToAccount", "Amount", "Timestamp", "Description"}

// CSVLogger mirrors every transaction record into an append-only CSV
// file, giving an audit trail that survives independently of the
// database.
type CSVLogger struct {
	mu   sync.Mutex
	path string
}

// NewCSVLogger opens (or creates) the audit file at path, writing the
// header row on first creation.
func NewCSVLogger(path string) (*CSVLogger, error) {
	l := &CSVLogger{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := l.write(csvHeader); err != nil {
			return nil, err
		}
		logger.Log.WithField("path", path).Info("Transaction audit file created")
	}
	return l, nil
}

// Append writes one record as a CSV line.
func (l *CSVLogger) Append(record *model.TransactionRecord) error {
	return l.write([]string{
		record.ID.String(),
		string(record.Type),
		deref(record.FromAccount),
		deref(record.ToAccount),
		record.Amount.StringFixed(2),
		record.CreatedAt.Format(time.RFC3339),
		record.Description,
	})
}

func (l *CSVLogger) write(fields []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
