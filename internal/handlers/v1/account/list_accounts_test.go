package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/service"
)

type mockAccountLister struct {
	mock.Mock
}

func (m *mockAccountLister) ListAccounts(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]service.Account)
	return accounts, args.Error(1)
}

func newAccountTestAPI(t *testing.T, svc accountLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything).Return([]service.Account{
		{
			ID:      accountID,
			Name:    "Checking",
			Type:    service.AccountTypeCash,
			SubType: "chequing",
			Balance: decimal.RequireFromString("120.50"),
		},
	}, nil)

	resp := newAccountTestAPI(t, mockSvc).Get("/v1/account/list")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, accountID.String(), body.Accounts[0].ID)
	assert.Equal(t, "Checking", body.Accounts[0].Name)
	assert.Equal(t, "120.5", body.Accounts[0].Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_Empty(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything).Return([]service.Account{}, nil)

	resp := newAccountTestAPI(t, mockSvc).Get("/v1/account/list")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything).
		Return(nil, errors.New("connection refused"))

	resp := newAccountTestAPI(t, mockSvc).Get("/v1/account/list")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
