package service

import (
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
)

// AuditTrail is the flat-file mirror of the transaction log.
type AuditTrail interface {
	Append(record *model.TransactionRecord) error
}

// appendRecord writes a completed movement to the transaction store
// and the audit file. The balance change has already been persisted at
// this point, so append failures are logged rather than propagated:
// the audit trail records intent-followed-by-success and losing a line
// must not undo the movement itself. The CSV line is written even when
// the store append fails.
func appendRecord(txRepo repository.ITransactionRepository, trail AuditTrail, record *model.TransactionRecord) {
	if err := txRepo.Append(record); err != nil {
		logger.Log.WithError(err).WithField("transaction_id", record.ID).
			Error("Failed to append transaction record to store")
	}
	if trail != nil {
		if err := trail.Append(record); err != nil {
			logger.Log.WithError(err).WithField("transaction_id", record.ID).
				Error("Failed to append transaction record to audit file")
		}
	}
}
