package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryAggregateRow is one category's totals over a reporting window.
// Income and Expense are signed sums of the matching transaction amounts.
type CategoryAggregateRow struct {
	CategoryID       uuid.UUID
	CategoryName     string
	CategoryColor    string
	Income           decimal.Decimal
	Expense          decimal.Decimal
	TransactionCount int64
	AverageAmount    decimal.Decimal
}

// MonthlyActivityRow is one category's signed total for one calendar month.
// Month is formatted as YYYY-MM.
type MonthlyActivityRow struct {
	CategoryID uuid.UUID
	Month      string
	Amount     decimal.Decimal
	Count      int64
}

// ReportFilter bounds a report query. Start and End are inclusive dates.
// An empty AccountIDs slice means all accounts.
type ReportFilter struct {
	Start      time.Time
	End        time.Time
	AccountIDs []uuid.UUID
}

// ICategoryReportTable defines the interface for report aggregate queries.
//
//go:generate mockery --name ICategoryReportTable --output mock_ICategoryReportTable.go
type ICategoryReportTable interface {
	CategoryAggregates(ctx context.Context, filter *ReportFilter) ([]*CategoryAggregateRow, error)
	MonthlyActivity(ctx context.Context, filter *ReportFilter) ([]*MonthlyActivityRow, error)
}
