package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/operator"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

func newReportTestService(t *testing.T) (*ReportService, *mockReportTable) {
	t.Helper()
	mockTable := &mockReportTable{}
	t.Cleanup(func() { mockTable.AssertExpectations(t) })
	store := &storage.Storage{Reports: mockTable}
	svc := NewReportService(store, nil)
	return svc, mockTable
}

func fixedWindow() report.Window {
	return report.Window{
		Start: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func aggregateRow(name, income, expense string) *sqlconfig.CategoryAggregateRow {
	return &sqlconfig.CategoryAggregateRow{
		CategoryID:       uuid.Must(uuid.NewV4()),
		CategoryName:     name,
		CategoryColor:    "#336699",
		Income:           decimal.RequireFromString(income),
		Expense:          decimal.RequireFromString(expense),
		TransactionCount: 3,
		AverageAmount:    decimal.RequireFromString("1.00"),
	}
}

func TestBreakdown_BuildsReportFromRows(t *testing.T) {
	svc, mockTable := newReportTestService(t)

	window := fixedWindow()
	salary := aggregateRow("Salary", "2000", "0")
	food := aggregateRow("Food", "0", "-500")

	mockTable.On("CategoryAggregates", mock.Anything, mock.MatchedBy(func(f *sqlconfig.ReportFilter) bool {
		return f.Start.Equal(window.Start) && f.End.Equal(window.End) && len(f.AccountIDs) == 0
	})).Return([]*sqlconfig.CategoryAggregateRow{salary, food}, nil)
	mockTable.On("MonthlyActivity", mock.Anything, mock.Anything).
		Return([]*sqlconfig.MonthlyActivityRow{}, nil)

	rep, err := svc.Breakdown(context.Background(), ReportQuery{Window: window})

	assert.NoError(t, err)
	assert.Len(t, rep.IncomeCategories, 1)
	assert.Len(t, rep.ExpenseCategories, 1)
	assert.True(t, rep.TotalIncome.Equal(decimal.RequireFromString("2000")))
	assert.True(t, rep.TotalExpenses.Equal(decimal.RequireFromString("500")))
	assert.True(t, rep.NetAmount.Equal(decimal.RequireFromString("1500")))
}

func TestBreakdown_DefaultsToCurrentFiscalYear(t *testing.T) {
	svc, mockTable := newReportTestService(t)
	svc.now = func() time.Time {
		return time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	}

	mockTable.On("CategoryAggregates", mock.Anything, mock.MatchedBy(func(f *sqlconfig.ReportFilter) bool {
		return f.Start.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			f.End.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	})).Return([]*sqlconfig.CategoryAggregateRow{}, nil)
	mockTable.On("MonthlyActivity", mock.Anything, mock.Anything).
		Return([]*sqlconfig.MonthlyActivityRow{}, nil)

	rep, err := svc.Breakdown(context.Background(), ReportQuery{})

	assert.NoError(t, err)
	assert.Equal(t, "2025-04-01", rep.Window.StartString())
	assert.Equal(t, "2026-03-31", rep.Window.EndString())
}

func TestBreakdown_StorageError(t *testing.T) {
	svc, mockTable := newReportTestService(t)

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	rep, err := svc.Breakdown(context.Background(), ReportQuery{Window: fixedWindow()})

	assert.Error(t, err)
	assert.Nil(t, rep)
}

func TestPivot_AttachesMonthlyTrend(t *testing.T) {
	svc, mockTable := newReportTestService(t)

	window := fixedWindow()
	food := aggregateRow("Food", "0", "-150")

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return([]*sqlconfig.CategoryAggregateRow{food}, nil)
	mockTable.On("MonthlyActivity", mock.Anything, mock.Anything).
		Return([]*sqlconfig.MonthlyActivityRow{
			{CategoryID: food.CategoryID, Month: "2025-04", Amount: decimal.RequireFromString("-100"), Count: 2},
			{CategoryID: food.CategoryID, Month: "2025-05", Amount: decimal.RequireFromString("-50"), Count: 1},
		}, nil)

	rep, err := svc.Pivot(context.Background(), ReportQuery{Window: window})

	assert.NoError(t, err)
	assert.Len(t, rep.MonthColumns, 2)
	assert.Equal(t, "2025-04", rep.MonthColumns[0].Key)
	assert.Len(t, rep.Rows, 1)
	assert.True(t, rep.Rows[0].ByMonth[0].Equal(decimal.RequireFromString("-100")))
	assert.True(t, rep.Rows[0].ByMonth[1].Equal(decimal.RequireFromString("-50")))
}

func TestExportCSV_Breakdown(t *testing.T) {
	svc, mockTable := newReportTestService(t)
	svc.now = func() time.Time {
		return time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)
	}

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return([]*sqlconfig.CategoryAggregateRow{aggregateRow("Salary", "2000", "0")}, nil)
	mockTable.On("MonthlyActivity", mock.Anything, mock.Anything).
		Return([]*sqlconfig.MonthlyActivityRow{}, nil)

	csv, filename, err := svc.ExportCSV(context.Background(), ReportKindBreakdown, ReportQuery{Window: fixedWindow()})

	assert.NoError(t, err)
	assert.Equal(t, "category-report-2025-04-01-to-2026-03-31.csv", filename)
	assert.True(t, strings.HasPrefix(csv, "Category Report"))
	assert.Contains(t, csv, "Salary")
}

func TestExportCSV_Pivot(t *testing.T) {
	svc, mockTable := newReportTestService(t)

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return([]*sqlconfig.CategoryAggregateRow{}, nil)
	mockTable.On("MonthlyActivity", mock.Anything, mock.Anything).
		Return([]*sqlconfig.MonthlyActivityRow{}, nil)

	_, filename, err := svc.ExportCSV(context.Background(), ReportKindPivot, ReportQuery{Window: fixedWindow()})

	assert.NoError(t, err)
	assert.Equal(t, "monthwise-category-report-2025-04-01-to-2026-03-31.csv", filename)
}

func TestExportCSV_UnknownKind(t *testing.T) {
	svc, _ := newReportTestService(t)

	_, _, err := svc.ExportCSV(context.Background(), ReportKind("pie-chart"), ReportQuery{Window: fixedWindow()})

	assert.ErrorIs(t, err, ErrUnknownReportKind)
}

func TestDrillDown_ResolvesCategoryName(t *testing.T) {
	svc, mockTable := newReportTestService(t)

	window := fixedWindow()
	food := aggregateRow("Food", "0", "-500")

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return([]*sqlconfig.CategoryAggregateRow{food}, nil)

	selection, err := svc.DrillDown(context.Background(), ReportQuery{Window: window}, food.CategoryID, "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, "Food", selection.CategoryName)
	assert.Equal(t, "2025-06-01", selection.Window.StartString())
	assert.Equal(t, "2025-06-30", selection.Window.EndString())
}

func TestDrillDown_UnknownCategory(t *testing.T) {
	svc, mockTable := newReportTestService(t)

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return([]*sqlconfig.CategoryAggregateRow{}, nil)

	selection, err := svc.DrillDown(context.Background(), ReportQuery{Window: fixedWindow()}, uuid.Must(uuid.NewV4()), "")

	assert.Error(t, err)
	assert.Nil(t, selection)
}

func TestBreakdown_ThroughQueryGate(t *testing.T) {
	mockTable := &mockReportTable{}
	store := &storage.Storage{Reports: mockTable}

	gate := operator.NewOperatorDelegator(store, 2)
	gate.Start()
	defer gate.Stop()

	svc := NewReportService(store, gate)

	mockTable.On("CategoryAggregates", mock.Anything, mock.Anything).
		Return([]*sqlconfig.CategoryAggregateRow{aggregateRow("Rent", "0", "-900")}, nil)
	mockTable.On("MonthlyActivity", mock.Anything, mock.Anything).
		Return([]*sqlconfig.MonthlyActivityRow{}, nil)

	rep, err := svc.Breakdown(context.Background(), ReportQuery{Window: fixedWindow()})

	assert.NoError(t, err)
	assert.Len(t, rep.ExpenseCategories, 1)
	mockTable.AssertExpectations(t)
}
