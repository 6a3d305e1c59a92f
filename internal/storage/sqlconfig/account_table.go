package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/carson-networks/report-server/internal/storage/sqlconfig/bobgen"
)

// AccountsTable provides read access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable for the given database.
func NewAccountsTable(db *sql.DB) AccountsTable {
	return AccountsTable{exec: bob.NewDB(db)}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := bobgen.FindAccount(ctx, t.exec, id)
	if err != nil {
		return nil, err
	}
	return bobAccountToAccount(row), nil
}

// List returns accounts matching the filter. Nil filter returns all.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(bobgen.Accounts.Columns.Name).Asc(),
		sm.OrderBy(bobgen.Accounts.Columns.ID).Asc(),
	)
	rows, err := bobgen.Accounts.Query(queryMods...).All(ctx, t.exec)
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i, row := range rows {
		result[i] = bobAccountToAccount(row)
	}
	return result, nil
}

func bobAccountToAccount(row *bobgen.Account) *Account {
	return &Account{
		ID:      row.ID,
		Name:    row.Name,
		Type:    AccountType(row.Type),
		SubType: row.SubType,
		Balance: row.Balance,
	}
}
