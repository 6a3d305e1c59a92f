package service

import (
	"context"

	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns a page of transactions matching the filter plus a
// flag indicating whether another page exists.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionListFilter) ([]Transaction, bool, error) {
	limit := defaultLimit
	offset := 0
	storageFilter := &sqlconfig.TransactionFilter{}
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
		storageFilter.CategoryID = filter.CategoryID
		storageFilter.AccountIDs = filter.AccountIDs
		storageFilter.DateFrom = filter.DateFrom
		storageFilter.DateTo = filter.DateTo
	}
	storageFilter.Limit = limit
	storageFilter.Offset = offset

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, false, err
	}

	hasMore := false
	if len(rows) > limit {
		rows = rows[:limit]
		hasMore = true
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:              row.ID,
			AccountID:       row.AccountID,
			CategoryID:      row.CategoryID,
			Amount:          row.Amount,
			TransactionName: row.TransactionName,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}

	return convertedTransactions, hasMore, nil
}
