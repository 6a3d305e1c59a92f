package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns all accounts ordered by name. The account roster is
// small, so listing stays unpaginated.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, &sqlconfig.AccountFilter{})
	if err != nil {
		return nil, err
	}

	convertedAccounts := make([]Account, len(rows))
	for i, row := range rows {
		convertedAccounts[i] = accountFromStorage(row)
	}

	return convertedAccounts, nil
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:      row.ID,
		Name:    row.Name,
		Type:    AccountType(row.Type),
		SubType: row.SubType,
		Balance: row.Balance,
	}
}
