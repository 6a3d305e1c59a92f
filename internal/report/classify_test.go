package report

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func aggregate(name, income, expense string, trend ...MonthlyPoint) CategoryAggregate {
	return CategoryAggregate{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         name,
		Income:       dec(income),
		Expense:      dec(expense),
		MonthlyTrend: trend,
	}
}

func TestClassify_ExpenseDominant(t *testing.T) {
	c := Classify(aggregate("Food", "50", "500"))

	assert.Equal(t, KindExpense, c.Kind)
	assert.True(t, c.Expense.Equal(dec("500")))
}

func TestClassify_IncomeDominant(t *testing.T) {
	c := Classify(aggregate("Salary", "2000", "100"))

	assert.Equal(t, KindIncome, c.Kind)
}

func TestClassify_NegativeExpenseNormalized(t *testing.T) {
	// Some producers ship expense totals pre-signed; magnitude wins.
	c := Classify(aggregate("Food", "0", "-500"))

	assert.Equal(t, KindExpense, c.Kind)
	assert.True(t, c.Expense.Equal(dec("500")), "expense normalized to magnitude, got %s", c.Expense)
}

func TestClassify_NoActivityExcluded(t *testing.T) {
	c := Classify(aggregate("Transfers", "0", "0"))

	assert.Equal(t, KindExcluded, c.Kind)
}

func TestClassify_EqualMagnitudesAreIncome(t *testing.T) {
	// Dominance requires strictly greater expense; ties stay income.
	c := Classify(aggregate("Refunds", "100", "100"))

	assert.Equal(t, KindIncome, c.Kind)
}

func TestClassify_TrendSignPreserved(t *testing.T) {
	c := Classify(aggregate("Food", "0", "100",
		MonthlyPoint{Month: "2025-01", Amount: dec("-100")},
	))

	assert.True(t, c.ByMonth["2025-01"].Equal(dec("-100")), "trend must not be re-signed by classification")
}

func TestClassify_NilTrend(t *testing.T) {
	c := Classify(aggregate("Cash", "100", "0"))

	assert.Empty(t, c.ByMonth)
	assert.Equal(t, KindIncome, c.Kind)
}

func TestClassify_MalformedMonthDropped(t *testing.T) {
	c := Classify(aggregate("Food", "0", "100",
		MonthlyPoint{Month: "January", Amount: dec("-50")},
		MonthlyPoint{Month: "2025-01", Amount: dec("-50")},
	))

	assert.Len(t, c.ByMonth, 1)
	assert.Contains(t, c.ByMonth, "2025-01")
}

func TestClassify_DuplicateMonthsSummed(t *testing.T) {
	c := Classify(aggregate("Food", "0", "100",
		MonthlyPoint{Month: "2025-01", Amount: dec("-30")},
		MonthlyPoint{Month: "2025-01", Amount: dec("-70")},
	))

	assert.True(t, c.ByMonth["2025-01"].Equal(dec("-100")))
}
