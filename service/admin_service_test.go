package service

import (
	"database/sql"
	"go-bank-ledger/config"
	"go-bank-ledger/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockAccountRepoForAdminSvc struct{ mock.Mock }

func (m *mockAccountRepoForAdminSvc) UpdateStatus(number string, status model.AccountStatus) error {
	args := m.Called(number, status)
	return args.Error(0)
}
func (m *mockAccountRepoForAdminSvc) UpdateField(number, column, value string) error {
	args := m.Called(number, column, value)
	return args.Error(0)
}
func (m *mockAccountRepoForAdminSvc) DeleteAccount(number string) error {
	args := m.Called(number)
	return args.Error(0)
}
func (m *mockAccountRepoForAdminSvc) Statistics() (*model.SystemStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SystemStats), args.Error(1)
}

func (m *mockAccountRepoForAdminSvc) CreateAccount(*model.Account, string) error { return nil }
func (m *mockAccountRepoForAdminSvc) FindByNumber(string) (*model.Account, error) {
	return nil, nil
}
func (m *mockAccountRepoForAdminSvc) ListAll() ([]*model.Account, error)            { return nil, nil }
func (m *mockAccountRepoForAdminSvc) SearchByName(string) ([]*model.Account, error) { return nil, nil }
func (m *mockAccountRepoForAdminSvc) SaveBalance(string, decimal.Decimal) error     { return nil }
func (m *mockAccountRepoForAdminSvc) NextAccountNumber() (string, error)            { return "", nil }
func (m *mockAccountRepoForAdminSvc) GetPasswordHash(string) (string, error)        { return "", nil }

type mockTxRepoForAdminSvc struct{ mock.Mock }

func (m *mockTxRepoForAdminSvc) FindByID(id uuid.UUID) (*model.TransactionRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransactionRecord), args.Error(1)
}
func (m *mockTxRepoForAdminSvc) RecentActivity(since time.Time) (map[model.TransactionType]int, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.TransactionType]int), args.Error(1)
}

func (m *mockTxRepoForAdminSvc) Append(*model.TransactionRecord) error { return nil }
func (m *mockTxRepoForAdminSvc) ListByAccount(string, int) ([]*model.TransactionRecord, error) {
	return nil, nil
}
func (m *mockTxRepoForAdminSvc) ListRecent(int) ([]*model.TransactionRecord, error) {
	return nil, nil
}

func TestAdminService_VerifyAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	assert.NoError(t, err)
	config.AppConfig.Admin.Username = "admin"
	config.AppConfig.Admin.PasswordHash = string(hash)

	adminService := NewAdminService(new(mockAccountRepoForAdminSvc), new(mockTxRepoForAdminSvc), nil)

	assert.True(t, adminService.VerifyAdmin("admin", "admin-pass"))
	assert.False(t, adminService.VerifyAdmin("admin", "wrong"))
	assert.False(t, adminService.VerifyAdmin("root", "admin-pass"))
}

func TestAdminService_SetAccountStatus(t *testing.T) {
	number := "0000001001"

	t.Run("freeze", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAdminSvc)
		adminService := NewAdminService(mockRepo, new(mockTxRepoForAdminSvc), nil)

		mockRepo.On("UpdateStatus", number, model.StatusFrozen).Return(nil).Once()

		assert.NoError(t, adminService.SetAccountStatus(number, model.StatusFrozen))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown status", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAdminSvc)
		adminService := NewAdminService(mockRepo, new(mockTxRepoForAdminSvc), nil)

		assert.Error(t, adminService.SetAccountStatus(number, "SUSPENDED"))
		mockRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("unknown account", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAdminSvc)
		adminService := NewAdminService(mockRepo, new(mockTxRepoForAdminSvc), nil)

		mockRepo.On("UpdateStatus", number, model.StatusActive).Return(sql.ErrNoRows).Once()

		assert.ErrorIs(t, adminService.SetAccountStatus(number, model.StatusActive), ErrAccountNotFound)
	})
}

func TestAdminService_UpdateContact(t *testing.T) {
	number := "0000001001"

	t.Run("only non-empty fields are written", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAdminSvc)
		adminService := NewAdminService(mockRepo, new(mockTxRepoForAdminSvc), nil)

		mockRepo.On("UpdateField", number, "email", "new@example.com").Return(nil).Once()

		err := adminService.UpdateContact(number, model.UpdateContactRequest{Email: "new@example.com"})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNumberOfCalls(t, "UpdateField", 1)
	})

	t.Run("invalid email is rejected before any write", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAdminSvc)
		adminService := NewAdminService(mockRepo, new(mockTxRepoForAdminSvc), nil)

		err := adminService.UpdateContact(number, model.UpdateContactRequest{Email: "nope"})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateField")
	})
}

func TestAdminService_FindTransaction(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		adminService := NewAdminService(new(mockAccountRepoForAdminSvc), new(mockTxRepoForAdminSvc), nil)

		_, err := adminService.FindTransaction("not-a-uuid")

		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("found", func(t *testing.T) {
		mockTxRepo := new(mockTxRepoForAdminSvc)
		adminService := NewAdminService(new(mockAccountRepoForAdminSvc), mockTxRepo, nil)

		number := "0000001001"
		record, err := model.NewTransactionRecord(model.TxDeposit, nil, &number, dec("10.00"), "")
		assert.NoError(t, err)

		mockTxRepo.On("FindByID", record.ID).Return(record, nil).Once()

		found, err := adminService.FindTransaction(record.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, record, found)
	})
}

func TestAdminService_Statistics(t *testing.T) {
	mockRepo := new(mockAccountRepoForAdminSvc)
	mockTxRepo := new(mockTxRepoForAdminSvc)
	adminService := NewAdminService(mockRepo, mockTxRepo, nil)

	stats := &model.SystemStats{TotalAccounts: 3, TotalBalance: dec("1250.75"), ActiveAccounts: 2, FrozenAccounts: 1}
	activity := map[model.TransactionType]int{model.TxDeposit: 5, model.TxTransfer: 2}

	mockRepo.On("Statistics").Return(stats, nil).Once()
	mockTxRepo.On("RecentActivity", mock.AnythingOfType("time.Time")).Return(activity, nil).Once()

	result, err := adminService.Statistics()

	assert.NoError(t, err)
	assert.Equal(t, stats, result.Accounts)
	assert.Equal(t, 5, result.Activity[model.TxDeposit])
	mockRepo.AssertExpectations(t)
	mockTxRepo.AssertExpectations(t)
}
