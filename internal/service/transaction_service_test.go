package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func newTestService(t *testing.T) (*TransactionService, *mockTransactionTable) {
	t.Helper()
	mockTable := &mockTransactionTable{}
	t.Cleanup(func() { mockTable.AssertExpectations(t) })
	store := &storage.Storage{Transactions: mockTable}
	svc := NewTransactionService(store)
	return svc, mockTable
}

func makeStorageRows(n int, txDate time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			AccountID:       uuid.Must(uuid.NewV4()),
			CategoryID:      uuid.Must(uuid.NewV4()),
			Amount:          decimal.RequireFromString("5.00"),
			TransactionName: "Item",
			TransactionDate: txDate,
			CreatedAt:       txDate,
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	txs, hasMore, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, txs)
	assert.False(t, hasMore)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, mockTable := newTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(2, now)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0 && f.CategoryID == nil
	})).Return(rows, nil)

	txs, hasMore, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.False(t, hasMore)
	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(rows[0].Amount))
}

func TestListTransactions_HasMorePage(t *testing.T) {
	svc, mockTable := newTestService(t)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	// Storage returns limit+1 rows when another page exists.
	rows := makeStorageRows(4, now)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 3 && f.Offset == 0
	})).Return(rows, nil)

	txs, hasMore, err := svc.ListTransactions(context.Background(), &TransactionListFilter{Limit: 3})

	assert.NoError(t, err)
	assert.Len(t, txs, 3)
	assert.True(t, hasMore)
}

func TestListTransactions_FilterPassthrough(t *testing.T) {
	svc, mockTable := newTestService(t)

	categoryID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID &&
			len(f.AccountIDs) == 1 && f.AccountIDs[0] == accountID &&
			f.DateFrom != nil && f.DateFrom.Equal(from) &&
			f.DateTo != nil && f.DateTo.Equal(to)
	})).Return([]*sqlconfig.Transaction{}, nil)

	_, _, err := svc.ListTransactions(context.Background(), &TransactionListFilter{
		CategoryID: &categoryID,
		AccountIDs: []uuid.UUID{accountID},
		DateFrom:   &from,
		DateTo:     &to,
	})

	assert.NoError(t, err)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	txs, hasMore, err := svc.ListTransactions(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, txs)
	assert.False(t, hasMore)
}
