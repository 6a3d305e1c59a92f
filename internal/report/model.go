package report

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// CategoryAggregate is one row of precomputed totals for a single category
// over a reporting window, as supplied by the storage layer. The scalar
// Income/Expense fields are authoritative for totals; MonthlyTrend is
// authoritative for the per-month pivot. The two are consistent for
// well-formed input but the engine never reconciles them.
type CategoryAggregate struct {
	ID               uuid.UUID
	Name             string
	Color            string
	Income           decimal.Decimal
	Expense          decimal.Decimal // producers disagree on sign; magnitude is always the absolute spend
	TransactionCount int64
	AverageAmount    decimal.Decimal
	MonthlyTrend     []MonthlyPoint // sparse, one entry per active month
}

// MonthlyPoint is one month of signed activity for a category.
type MonthlyPoint struct {
	Month  string // YYYY-MM
	Amount decimal.Decimal
	Count  int64
}

// Kind classifies a category for reporting purposes.
type Kind int8

const (
	KindIncome Kind = iota
	KindExpense
	KindExcluded
)

// ClassifiedCategory is a CategoryAggregate with its reporting kind resolved,
// a magnitude-normalized Expense, and the trend collapsed into a sparse
// month-keyed map.
type ClassifiedCategory struct {
	CategoryAggregate
	Kind    Kind
	ByMonth map[string]decimal.Decimal
}

// BreakdownCategory is one row of the category breakdown table.
type BreakdownCategory struct {
	ID               uuid.UUID
	Name             string
	Color            string
	Amount           decimal.Decimal
	TransactionCount int64
	AverageAmount    decimal.Decimal
	Percentage       decimal.Decimal // share of GrandTotal, 0 when GrandTotal is 0
}

// BreakdownReport is the categorized income/expense view of a window.
type BreakdownReport struct {
	Window            Window
	IncomeCategories  []BreakdownCategory // sorted descending by Amount, stable
	ExpenseCategories []BreakdownCategory
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal // magnitude
	NetAmount         decimal.Decimal // TotalIncome - TotalExpenses
	GrandTotal        decimal.Decimal // TotalIncome + TotalExpenses
}

// MonthColumn is one calendar month column of the pivot.
type MonthColumn struct {
	Key   string // YYYY-MM
	Label string // e.g. "Apr"
	Year  int
}

// PivotRow is one category row of the pivot, with ByMonth aligned to the
// report's MonthColumns (zero-filled for inactive months).
type PivotRow struct {
	ID      uuid.UUID
	Name    string
	Color   string
	Kind    Kind
	ByMonth []decimal.Decimal
	Overall decimal.Decimal
}

// MonthTotal splits a signed total into the contributions of income rows and
// expense rows. Total == Income + Expense.
type MonthTotal struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Total   decimal.Decimal
}

// PivotReport is the categories-by-months grid of a window.
type PivotReport struct {
	Window        Window
	MonthColumns  []MonthColumn // ascending by Key
	Rows          []PivotRow    // descending by abs(Overall), stable
	TotalsByMonth []MonthTotal  // aligned to MonthColumns
	GrandTotal    MonthTotal
}
