package service

import (
	"context"
	"database/sql"
	"fmt"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransferService moves funds between two accounts as a
// withdraw-then-deposit sequence followed by two independent balance
// writes. The two writes are intentionally not wrapped in a single
// database transaction, matching the behavior this system reproduces;
// a partial failure surfaces as ErrPersistence and leaves the
// in-memory entities mutated. See DESIGN.md for the stated choice and
// the recommended hardening.
type TransferService struct {
	accountRepo repository.IAccountRepository
	txRepo      repository.ITransactionRepository
	trail       AuditTrail
	cache       ICacheClient
}

func NewTransferService(accountRepo repository.IAccountRepository, txRepo repository.ITransactionRepository, trail AuditTrail, cache ICacheClient) *TransferService {
	return &TransferService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		trail:       trail,
		cache:       cache,
	}
}

// Transfer moves amount from one account to another and records the
// movement. On success exactly one TRANSFER record referencing both
// accounts is produced.
func (s *TransferService) Transfer(fromNumber, toNumber string, amount decimal.Decimal, description string) (*model.TransactionRecord, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account": fromNumber,
		"to_account":   toNumber,
		"amount":       amount.String(),
	})
	log.Info("Starting transfer")

	if fromNumber == toNumber {
		return nil, ErrSameAccountTransfer
	}

	fromAccount, err := s.resolve(fromNumber)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.resolve(toNumber)
	if err != nil {
		return nil, err
	}

	if fromAccount.IsFrozen() || toAccount.IsFrozen() {
		return nil, ErrAccountFrozen
	}

	// A withdraw failure aborts before anything is persisted. Once it
	// succeeds the deposit cannot fail on amount validity, since the
	// same amount just passed the withdraw's validation.
	if err := fromAccount.Withdraw(amount); err != nil {
		return nil, err
	}
	if err := toAccount.Deposit(amount); err != nil {
		return nil, err
	}

	// Two independent writes. Both are attempted even if the first
	// fails, mirroring the reproduced behavior; the entities stay
	// mutated either way.
	errFrom := s.accountRepo.SaveBalance(fromNumber, fromAccount.Balance)
	errTo := s.accountRepo.SaveBalance(toNumber, toAccount.Balance)
	s.invalidate(fromNumber)
	s.invalidate(toNumber)
	if errFrom != nil || errTo != nil {
		log.WithFields(logrus.Fields{
			"source_write_error":      errFrom,
			"destination_write_error": errTo,
		}).Error("Transfer balance writes failed or partially failed")
		if errFrom != nil {
			return nil, fmt.Errorf("%w: saving source balance: %v", ErrPersistence, errFrom)
		}
		return nil, fmt.Errorf("%w: saving destination balance: %v", ErrPersistence, errTo)
	}

	record, err := model.NewTransactionRecord(model.TxTransfer, &fromNumber, &toNumber, amount, description)
	if err != nil {
		return nil, err
	}
	appendRecord(s.txRepo, s.trail, record)

	log.WithField("transaction_id", record.ID).Info("Transfer completed")
	return record, nil
}

func (s *TransferService) resolve(accountNumber string) (*model.Account, error) {
	account, err := s.accountRepo.FindByNumber(accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return account, nil
}

func (s *TransferService) invalidate(accountNumber string) {
	if s.cache != nil {
		s.cache.Del(context.Background(), accountCacheKey(accountNumber))
	}
}
