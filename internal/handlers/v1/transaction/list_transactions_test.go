package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, filter *service.TransactionListFilter) ([]service.Transaction, bool, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Bool(1), args.Error(2)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_Empty(t *testing.T) {
	input := &ListTransactionsInput{}

	filter, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Nil(t, filter.CategoryID)
	assert.Empty(t, filter.AccountIDs)
	assert.Nil(t, filter.DateFrom)
	assert.Nil(t, filter.DateTo)
}

func TestParseListTransactionsInput_FullFilter(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())

	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			CategoryID: categoryID.String(),
			AccountIDs: []string{accountID.String()},
			StartDate:  "2025-06-01",
			EndDate:    "2025-06-30",
			Limit:      50,
			Offset:     100,
		},
	}

	filter, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Equal(t, categoryID, *filter.CategoryID)
	assert.Equal(t, []uuid.UUID{accountID}, filter.AccountIDs)
	assert.Equal(t, "2025-06-01", filter.DateFrom.Format("2006-01-02"))
	assert.Equal(t, "2025-06-30", filter.DateTo.Format("2006-01-02"))
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 100, filter.Offset)
}

func TestParseListTransactionsInput_BadCategoryID(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{CategoryID: "not-a-uuid"},
	}

	_, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

func TestParseListTransactionsInput_EndBeforeStart(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			StartDate: "2025-06-30",
			EndDate:   "2025-06-01",
		},
	}

	_, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_SinglePage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return([]service.Transaction{
			{
				ID:              txID,
				AccountID:       uuid.Must(uuid.NewV4()),
				CategoryID:      uuid.Must(uuid.NewV4()),
				Amount:          decimal.RequireFromString("-10.00"),
				TransactionName: "Coffee",
				TransactionDate: now,
				CreatedAt:       now,
			},
		}, false, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, txID.String(), body.Transactions[0].ID)
	assert.Equal(t, "-10", body.Transactions[0].Amount)
	assert.False(t, body.HasMore)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_DrillDownFilter(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f *service.TransactionListFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID &&
			f.DateFrom != nil && f.DateFrom.Format("2006-01-02") == "2025-06-01" &&
			f.DateTo != nil && f.DateTo.Format("2006-01-02") == "2025-06-30"
	})).Return(([]service.Transaction)(nil), false, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		CategoryID: categoryID.String(),
		StartDate:  "2025-06-01",
		EndDate:    "2025-06-30",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_HasMore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	txs := make([]service.Transaction, 2)
	for i := range txs {
		txs[i] = service.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			AccountID:       uuid.Must(uuid.NewV4()),
			CategoryID:      uuid.Must(uuid.NewV4()),
			Amount:          decimal.RequireFromString("5.00"),
			TransactionName: "Item",
			TransactionDate: now,
			CreatedAt:       now,
		}
	}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f *service.TransactionListFilter) bool {
		return f.Limit == 2
	})).Return(txs, true, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{Limit: 2})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.True(t, body.HasMore)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, false, errors.New("connection refused"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
