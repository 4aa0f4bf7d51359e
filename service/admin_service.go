package service

import (
	"context"
	"database/sql"
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/config"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"time"

	"github.com/google/uuid"
)

// AdminStats bundles the account aggregates with the last week's
// activity counts for the statistics screen.
type AdminStats struct {
	Accounts *model.SystemStats
	Activity map[model.TransactionType]int
}

// AdminService covers the administrator operations: inspection,
// statistics, freezing, contact updates and account deletion.
type AdminService struct {
	accountRepo repository.IAccountRepository
	txRepo      repository.ITransactionRepository
	cache       ICacheClient
}

func NewAdminService(accountRepo repository.IAccountRepository, txRepo repository.ITransactionRepository, cache ICacheClient) *AdminService {
	return &AdminService{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		cache:       cache,
	}
}

// VerifyAdmin checks the admin credentials configured for this
// deployment.
func (s *AdminService) VerifyAdmin(username, password string) bool {
	cfg := config.AppConfig.Admin
	if username != cfg.Username || !CheckPasswordHash(password, cfg.PasswordHash) {
		logger.Log.WithField("username", username).Warn("Failed admin login attempt")
		return false
	}
	return true
}

func (s *AdminService) ListAccounts() ([]*model.Account, error) {
	accounts, err := s.accountRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return accounts, nil
}

func (s *AdminService) SearchAccounts(fragment string) ([]*model.Account, error) {
	accounts, err := s.accountRepo.SearchByName(fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return accounts, nil
}

// Statistics aggregates the account table and the last seven days of
// transaction activity.
func (s *AdminService) Statistics() (*AdminStats, error) {
	accounts, err := s.accountRepo.Statistics()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	activity, err := s.txRepo.RecentActivity(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &AdminStats{Accounts: accounts, Activity: activity}, nil
}

func (s *AdminService) RecentTransactions(limit int) ([]*model.TransactionRecord, error) {
	records, err := s.txRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return records, nil
}

// FindTransaction looks up a single record by its identifier.
func (s *AdminService) FindTransaction(id string) (*model.TransactionRecord, error) {
	txID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	record, err := s.txRepo.FindByID(txID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return record, nil
}

// SetAccountStatus freezes or unfreezes an account. A frozen account
// rejects every balance mutation until unfrozen.
func (s *AdminService) SetAccountStatus(accountNumber string, status model.AccountStatus) error {
	if status != model.StatusActive && status != model.StatusFrozen {
		return fmt.Errorf("invalid account status %q", status)
	}
	if err := s.accountRepo.UpdateStatus(accountNumber, status); err != nil {
		if err == sql.ErrNoRows {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.invalidate(accountNumber)
	logger.Log.WithField("account_number", accountNumber).Infof("Account status set to %s", status)
	return nil
}

// UpdateContact applies the non-empty fields of the request to the
// account's contact columns.
func (s *AdminService) UpdateContact(accountNumber string, req model.UpdateContactRequest) error {
	if err := common.ValidateStruct(req); err != nil {
		return err
	}

	updates := map[string]string{
		"holder_name": req.HolderName,
		"email":       req.Email,
		"phone":       req.Phone,
		"ifsc":        req.IFSC,
	}
	for column, value := range updates {
		if value == "" {
			continue
		}
		if err := s.accountRepo.UpdateField(accountNumber, column, value); err != nil {
			if err == sql.ErrNoRows {
				return ErrAccountNotFound
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	s.invalidate(accountNumber)
	return nil
}

// DeleteAccount removes the account and its transaction history.
// Explicit administrative action is the only path that deletes
// anything in this system.
func (s *AdminService) DeleteAccount(accountNumber string) error {
	if err := s.accountRepo.DeleteAccount(accountNumber); err != nil {
		if err == sql.ErrNoRows {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.invalidate(accountNumber)
	logger.Log.WithField("account_number", accountNumber).Warn("Account deleted by administrator")
	return nil
}

func (s *AdminService) invalidate(accountNumber string) {
	if s.cache != nil {
		s.cache.Del(context.Background(), accountCacheKey(accountNumber))
	}
}
