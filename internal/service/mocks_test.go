package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// Hand-rolled doubles for the table interfaces. They live here so every
// service test shares one set.

type mockReportTable struct {
	mock.Mock
}

func (m *mockReportTable) CategoryAggregates(ctx context.Context, filter *sqlconfig.ReportFilter) ([]*sqlconfig.CategoryAggregateRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.CategoryAggregateRow)
	return rows, args.Error(1)
}

func (m *mockReportTable) MonthlyActivity(ctx context.Context, filter *sqlconfig.ReportFilter) ([]*sqlconfig.MonthlyActivityRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.MonthlyActivityRow)
	return rows, args.Error(1)
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

type mockAccountTable struct {
	mock.Mock
}

func (m *mockAccountTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*sqlconfig.Account)
	return row, args.Error(1)
}

func (m *mockAccountTable) List(ctx context.Context, filter *sqlconfig.AccountFilter) ([]*sqlconfig.Account, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Account)
	return rows, args.Error(1)
}
