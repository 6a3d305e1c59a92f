package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func newAccountTestService(t *testing.T) (*AccountService, *mockAccountTable) {
	t.Helper()
	mockTable := &mockAccountTable{}
	t.Cleanup(func() { mockTable.AssertExpectations(t) })
	store := &storage.Storage{Accounts: mockTable}
	svc := NewAccountService(store)
	return svc, mockTable
}

func TestGetAccount_Success(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.On("FindByID", mock.Anything, id).Return(&sqlconfig.Account{
		ID:      id,
		Name:    "Checking",
		Type:    sqlconfig.AccountTypeCash,
		Balance: decimal.RequireFromString("120.50"),
	}, nil)

	account, err := svc.GetAccount(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, "Checking", account.Name)
	assert.Equal(t, AccountTypeCash, account.Type)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("120.50")))
}

func TestGetAccount_StorageError(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.On("FindByID", mock.Anything, mock.Anything).
		Return(nil, errors.New("no rows"))

	account, err := svc.GetAccount(context.Background(), uuid.Must(uuid.NewV4()))

	assert.Error(t, err)
	assert.Nil(t, account)
}

func TestListAccounts_Success(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.On("List", mock.Anything, mock.Anything).Return([]*sqlconfig.Account{
		{ID: uuid.Must(uuid.NewV4()), Name: "Checking", Type: sqlconfig.AccountTypeCash},
		{ID: uuid.Must(uuid.NewV4()), Name: "Visa", Type: sqlconfig.AccountTypeCreditCards},
	}, nil)

	accounts, err := svc.ListAccounts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, AccountTypeCreditCards, accounts[1].Type)
}

func TestListAccounts_Empty(t *testing.T) {
	svc, mockTable := newAccountTestService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return([]*sqlconfig.Account{}, nil)

	accounts, err := svc.ListAccounts(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, accounts)
}
