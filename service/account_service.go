package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountService is the balance mutation core: it owns account
// opening, authentication and single-account deposits/withdrawals,
// making every successful mutation durable through the repository.
type AccountService struct {
	accountRepo repository.IAccountRepository
	txRepo      repository.ITransactionRepository
	trail       AuditTrail
	cache       ICacheClient
}

func NewAccountService(accountRepo repository.IAccountRepository, txRepo repository.ITransactionRepository, trail AuditTrail, cache ICacheClient) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		trail:       trail,
		cache:       cache,
	}
}

// OpenAccount validates the request, issues the next account number
// from the shared sequence and creates the account. A positive initial
// deposit produces the account's first DEPOSIT record.
func (s *AccountService) OpenAccount(req model.OpenAccountRequest) (*model.Account, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.InitialDeposit.Sign() < 0 || req.InitialDeposit.Exponent() < -2 {
		return nil, model.ErrInvalidAmount
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	accountNumber, err := s.accountRepo.NextAccountNumber()
	if err != nil {
		return nil, fmt.Errorf("%w: issuing account number: %v", ErrPersistence, err)
	}

	account := &model.Account{
		AccountNumber: accountNumber,
		HolderName:    req.HolderName,
		Email:         req.Email,
		Phone:         req.Phone,
		IFSC:          req.IFSC,
		Balance:       req.InitialDeposit,
		AccountType:   req.AccountType,
		Status:        model.StatusActive,
	}

	if err := s.accountRepo.CreateAccount(account, passwordHash); err != nil {
		return nil, fmt.Errorf("%w: creating account: %v", ErrPersistence, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.AccountNumber,
		"account_type":   account.AccountType,
	}).Info("Account opened")

	if req.InitialDeposit.Sign() > 0 {
		record, err := model.NewTransactionRecord(model.TxDeposit, nil, &account.AccountNumber, req.InitialDeposit, "Initial deposit")
		if err == nil {
			appendRecord(s.txRepo, s.trail, record)
		}
	}

	return account, nil
}

// Authenticate checks the account's credentials and returns a session
// token for the console session.
func (s *AccountService) Authenticate(accountNumber, password string) (string, error) {
	hash, err := s.accountRepo.GetPasswordHash(accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !CheckPasswordHash(password, hash) {
		logger.Log.WithField("account_number", accountNumber).Warn("Failed login attempt")
		return "", ErrInvalidCredentials
	}
	return GenerateSessionToken(accountNumber)
}

// GetAccount looks up an account, serving repeated lookups through the
// cache-aside layer when a cache is configured.
func (s *AccountService) GetAccount(accountNumber string) (*model.Account, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(context.Background(), accountCacheKey(accountNumber)).Result()
		if err == nil {
			var account model.Account
			if err := json.Unmarshal([]byte(cached), &account); err == nil {
				return &account, nil
			}
		}
	}

	account, err := s.accountRepo.FindByNumber(accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(account); err == nil {
			s.cache.Set(context.Background(), accountCacheKey(accountNumber), data, accountCacheTTL)
		}
	}
	return account, nil
}

// Deposit applies a deposit to the account and persists the new
// balance. Frozen accounts are rejected before the entity is touched.
func (s *AccountService) Deposit(accountNumber string, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	return s.mutate(accountNumber, amount, description, model.TxDeposit)
}

// Withdraw applies a withdrawal to the account and persists the new
// balance.
func (s *AccountService) Withdraw(accountNumber string, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	return s.mutate(accountNumber, amount, description, model.TxWithdraw)
}

func (s *AccountService) mutate(accountNumber string, amount decimal.Decimal, description string, txType model.TransactionType) (decimal.Decimal, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"amount":         amount.String(),
		"type":           txType,
	})

	account, err := s.loadForMutation(accountNumber)
	if err != nil {
		return decimal.Decimal{}, err
	}

	switch txType {
	case model.TxDeposit:
		err = account.Deposit(amount)
	case model.TxWithdraw:
		err = account.Withdraw(amount)
	}
	if err != nil {
		return decimal.Decimal{}, err
	}

	// The entity is already mutated here. A failed write therefore
	// leaves memory and store out of step; that gap is reported, not
	// rolled back.
	if err := s.accountRepo.SaveBalance(accountNumber, account.Balance); err != nil {
		log.WithError(err).Error("Failed to persist balance after mutation")
		return decimal.Decimal{}, fmt.Errorf("%w: saving balance: %v", ErrPersistence, err)
	}
	s.invalidate(accountNumber)

	var record *model.TransactionRecord
	switch txType {
	case model.TxDeposit:
		record, err = model.NewTransactionRecord(txType, nil, &accountNumber, amount, description)
	case model.TxWithdraw:
		record, err = model.NewTransactionRecord(txType, &accountNumber, nil, amount, description)
	}
	if err == nil {
		appendRecord(s.txRepo, s.trail, record)
	}

	log.WithField("new_balance", account.Balance.StringFixed(2)).Info("Balance mutation completed")
	return account.Balance, nil
}

// loadForMutation fetches the account directly from the store (never
// the cache, which may be stale) and applies the frozen-status check
// shared by every mutation path.
func (s *AccountService) loadForMutation(accountNumber string) (*model.Account, error) {
	account, err := s.accountRepo.FindByNumber(accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if account.IsFrozen() {
		return nil, ErrAccountFrozen
	}
	return account, nil
}

// History returns the account's most recent transaction records.
func (s *AccountService) History(accountNumber string, limit int) ([]*model.TransactionRecord, error) {
	if _, err := s.GetAccount(accountNumber); err != nil {
		return nil, err
	}
	records, err := s.txRepo.ListByAccount(accountNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return records, nil
}

func (s *AccountService) invalidate(accountNumber string) {
	if s.cache != nil {
		s.cache.Del(context.Background(), accountCacheKey(accountNumber))
	}
}
