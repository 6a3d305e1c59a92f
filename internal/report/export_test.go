package report

import (
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestBreakdownCSV(t *testing.T) {
	records := []CategoryAggregate{
		{
			ID:               uuid.Must(uuid.NewV4()),
			Name:             "Food",
			Income:           dec("0"),
			Expense:          dec("-500"),
			TransactionCount: 12,
			AverageAmount:    dec("41.666"),
		},
		{
			ID:               uuid.Must(uuid.NewV4()),
			Name:             "Salary",
			Income:           dec("2000"),
			Expense:          dec("0"),
			TransactionCount: 2,
			AverageAmount:    dec("1000"),
		},
	}
	generatedAt := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	csv := BreakdownCSV(Breakdown(records, testWindow()), generatedAt)
	lines := strings.Split(csv, "\n")

	assert.Equal(t, "Category Report", lines[0])
	assert.Equal(t, "Generated,2025-06-01T12:00:00Z", lines[1])
	assert.Equal(t, "Period,2025-04-01 to 2026-03-31", lines[2])

	assert.Contains(t, lines, "Total Income,2000.00")
	assert.Contains(t, lines, "Total Expenses,500.00")
	assert.Contains(t, lines, "Net Amount,1500.00")
	assert.Contains(t, lines, "Food,500.00,12,41.67,20.00%")
	assert.Contains(t, lines, "Salary,2000.00,2,1000.00,80.00%")

	// Expenses section precedes income.
	expensesAt := indexOf(lines, "Expenses")
	incomeAt := indexOf(lines, "Income")
	assert.Greater(t, incomeAt, expensesAt)
}

func TestBreakdownCSV_SkipsEmptySides(t *testing.T) {
	records := []CategoryAggregate{aggregate("Salary", "2000", "0")}

	csv := BreakdownCSV(Breakdown(records, testWindow()), time.Now())

	assert.NotContains(t, strings.Split(csv, "\n"), "Expenses")
	assert.Contains(t, strings.Split(csv, "\n"), "Income")
}

func TestPivotCSV(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "50", "100",
			MonthlyPoint{Month: "2025-01", Amount: dec("-100")},
			MonthlyPoint{Month: "2025-02", Amount: dec("50")},
		),
	}

	csv := PivotCSV(Pivot(records, testWindow()))
	lines := strings.Split(csv, "\n")

	assert.Equal(t, "Category,Jan 2025,Feb 2025,Overall", lines[0])
	assert.Equal(t, "Food,-100.00,50.00,-50.00", lines[1])
	assert.Equal(t, "Total,-100.00,50.00,-50.00", lines[2])
}

func TestPivotCSV_ZeroShownNotBlank(t *testing.T) {
	records := []CategoryAggregate{
		aggregate("Food", "0", "100", MonthlyPoint{Month: "2025-01", Amount: dec("-100")}),
		aggregate("Rent", "0", "200", MonthlyPoint{Month: "2025-02", Amount: dec("-200")}),
	}

	csv := PivotCSV(Pivot(records, testWindow()))

	assert.Contains(t, csv, "Rent,0.00,-200.00,-200.00")
	assert.Contains(t, csv, "Food,-100.00,0.00,-100.00")
}

func TestCSV_QuotesCategoryNames(t *testing.T) {
	records := []CategoryAggregate{aggregate("Food, Drink \"etc\"", "0", "100")}

	csv := BreakdownCSV(Breakdown(records, testWindow()), time.Now())

	assert.Contains(t, csv, `"Food, Drink ""etc""",100.00`)
}

func indexOf(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}
