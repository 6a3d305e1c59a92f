package report

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testWindow() Window {
	return Window{
		Start: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

// -- Breakdown tests --

func TestBreakdown_SplitsAndPercentages(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "-500"),
		aggregate("Salary", "2000", "0"),
	}

	rep := Breakdown(records, testWindow())

	assert.Len(t, rep.IncomeCategories, 1)
	assert.Len(t, rep.ExpenseCategories, 1)
	assert.True(t, rep.TotalIncome.Equal(dec("2000")))
	assert.True(t, rep.TotalExpenses.Equal(dec("500")))
	assert.True(t, rep.NetAmount.Equal(dec("1500")))
	assert.True(t, rep.GrandTotal.Equal(dec("2500")))

	assert.True(t, rep.ExpenseCategories[0].Percentage.Equal(dec("20")))
	assert.True(t, rep.IncomeCategories[0].Percentage.Equal(dec("80")))
}

func TestBreakdown_PercentagesSumToHundred(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "300"),
		aggregate("Rent", "0", "700"),
		aggregate("Salary", "1500", "0"),
		aggregate("Interest", "500", "0"),
	}

	rep := Breakdown(records, testWindow())

	sum := decimal.Zero
	for _, c := range append(rep.IncomeCategories, rep.ExpenseCategories...) {
		sum = sum.Add(c.Percentage)
	}
	diff := sum.Sub(dec("100")).Abs()
	assert.True(t, diff.LessThan(dec("0.01")), "percentages sum to %s", sum)
}

func TestBreakdown_SortedDescendingStable(t *testing.T) {
	a := aggregate("A", "0", "100")
	b := aggregate("B", "0", "300")
	c := aggregate("C", "0", "100")

	rep := Breakdown([]CategoryAggregate{a, b, c}, testWindow())

	assert.Equal(t, "B", rep.ExpenseCategories[0].Name)
	assert.Equal(t, "A", rep.ExpenseCategories[1].Name, "ties keep input order")
	assert.Equal(t, "C", rep.ExpenseCategories[2].Name)
}

func TestBreakdown_ZeroGrandTotal(t *testing.T) {
	rep := Breakdown([]CategoryAggregate{aggregate("Transfers", "0", "0")}, testWindow())

	assert.Empty(t, rep.IncomeCategories)
	assert.Empty(t, rep.ExpenseCategories)
	assert.True(t, rep.GrandTotal.IsZero())
}

func TestBreakdown_EmptyInput(t *testing.T) {
	rep := Breakdown(nil, testWindow())

	assert.Empty(t, rep.IncomeCategories)
	assert.Empty(t, rep.ExpenseCategories)
	assert.True(t, rep.GrandTotal.IsZero())
	assert.True(t, rep.NetAmount.IsZero())
}

// -- Pivot tests --

func TestPivot_SingleCategoryTwoMonths(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "50", "100",
			MonthlyPoint{Month: "2025-02", Amount: dec("50")},
			MonthlyPoint{Month: "2025-01", Amount: dec("-100")},
		),
	}

	rep := Pivot(records, testWindow())

	assert.Len(t, rep.MonthColumns, 2)
	assert.Equal(t, "2025-01", rep.MonthColumns[0].Key)
	assert.Equal(t, "2025-02", rep.MonthColumns[1].Key)
	assert.Equal(t, "Jan", rep.MonthColumns[0].Label)
	assert.Equal(t, 2025, rep.MonthColumns[0].Year)

	assert.Len(t, rep.Rows, 1)
	row := rep.Rows[0]
	assert.True(t, row.ByMonth[0].Equal(dec("-100")))
	assert.True(t, row.ByMonth[1].Equal(dec("50")))
	assert.True(t, row.Overall.Equal(dec("-50")))

	assert.True(t, rep.TotalsByMonth[0].Total.Equal(dec("-100")))
	assert.True(t, rep.TotalsByMonth[1].Total.Equal(dec("50")))
	assert.True(t, rep.GrandTotal.Total.Equal(dec("-50")))
}

func TestPivot_ZeroFillsInactiveMonths(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "100", MonthlyPoint{Month: "2025-01", Amount: dec("-100")}),
		aggregate("Rent", "0", "200", MonthlyPoint{Month: "2025-03", Amount: dec("-200")}),
	}

	rep := Pivot(records, testWindow())

	assert.Len(t, rep.MonthColumns, 2)
	for _, row := range rep.Rows {
		assert.Len(t, row.ByMonth, 2)
	}
	// Rent is the bigger spender, so its row comes first and its January
	// cell is a zero fill.
	assert.Equal(t, "Rent", rep.Rows[0].Name)
	assert.True(t, rep.Rows[0].ByMonth[0].IsZero())
}

func TestPivot_MonthTotalsSplitByKind(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "100", MonthlyPoint{Month: "2025-01", Amount: dec("-100")}),
		aggregate("Salary", "2000", "0", MonthlyPoint{Month: "2025-01", Amount: dec("2000")}),
	}

	rep := Pivot(records, testWindow())

	total := rep.TotalsByMonth[0]
	assert.True(t, total.Income.Equal(dec("2000")))
	assert.True(t, total.Expense.Equal(dec("-100")), "expense bucket keeps the row's signed amount")
	assert.True(t, total.Total.Equal(total.Income.Add(total.Expense)))
}

func TestPivot_GrandTotalConsistency(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "300",
			MonthlyPoint{Month: "2025-01", Amount: dec("-100")},
			MonthlyPoint{Month: "2025-02", Amount: dec("-200")},
		),
		aggregate("Salary", "2000", "0",
			MonthlyPoint{Month: "2025-01", Amount: dec("1000")},
			MonthlyPoint{Month: "2025-02", Amount: dec("1000")},
		),
	}

	rep := Pivot(records, testWindow())

	monthSum := decimal.Zero
	for _, t := range rep.TotalsByMonth {
		monthSum = monthSum.Add(t.Total)
	}
	assert.True(t, rep.GrandTotal.Total.Equal(monthSum))

	rowSum := decimal.Zero
	for _, row := range rep.Rows {
		rowSum = rowSum.Add(row.Overall)
	}
	assert.True(t, rep.GrandTotal.Total.Equal(rowSum))
}

func TestPivot_RowsOrderedByAbsOverall(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Small", "0", "50", MonthlyPoint{Month: "2025-01", Amount: dec("-50")}),
		aggregate("Big", "0", "900", MonthlyPoint{Month: "2025-01", Amount: dec("-900")}),
		aggregate("Salary", "400", "0", MonthlyPoint{Month: "2025-01", Amount: dec("400")}),
	}

	rep := Pivot(records, testWindow())

	assert.Equal(t, "Big", rep.Rows[0].Name)
	assert.Equal(t, "Salary", rep.Rows[1].Name)
	assert.Equal(t, "Small", rep.Rows[2].Name)
}

func TestPivot_ExcludedCategoriesAbsent(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Transfers", "0", "0", MonthlyPoint{Month: "2025-01", Amount: dec("100")}),
		aggregate("Food", "0", "100", MonthlyPoint{Month: "2025-02", Amount: dec("-100")}),
	}

	rep := Pivot(records, testWindow())

	assert.Len(t, rep.Rows, 1)
	assert.Len(t, rep.MonthColumns, 1, "excluded categories contribute no month columns")
	assert.Equal(t, "2025-02", rep.MonthColumns[0].Key)
}

func TestPivot_EmptyInput(t *testing.T) {
	rep := Pivot(nil, testWindow())

	assert.Empty(t, rep.MonthColumns)
	assert.Empty(t, rep.Rows)
	assert.True(t, rep.GrandTotal.Income.IsZero())
	assert.True(t, rep.GrandTotal.Expense.IsZero())
	assert.True(t, rep.GrandTotal.Total.IsZero())
}

func TestAggregation_Idempotent(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "300",
			MonthlyPoint{Month: "2025-02", Amount: dec("-200")},
			MonthlyPoint{Month: "2025-01", Amount: dec("-100")},
		),
		aggregate("Salary", "2000", "0", MonthlyPoint{Month: "2025-01", Amount: dec("2000")}),
	}

	first := Pivot(records, testWindow())
	second := Pivot(records, testWindow())
	assert.Equal(t, spew.Sdump(first), spew.Sdump(second))

	firstBreakdown := Breakdown(records, testWindow())
	secondBreakdown := Breakdown(records, testWindow())
	assert.Equal(t, spew.Sdump(firstBreakdown), spew.Sdump(secondBreakdown))
}
