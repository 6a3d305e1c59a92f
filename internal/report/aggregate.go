package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Breakdown folds a collection of category aggregates into separate sorted
// income and expense tables with each category's share of the grand total.
// An empty input yields empty lists and zero totals, never an error.
func Breakdown(records []CategoryAggregate, window Window) BreakdownReport {
	var incomeCategories, expenseCategories []BreakdownCategory
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, record := range records {
		classified := Classify(record)
		switch classified.Kind {
		case KindIncome:
			incomeCategories = append(incomeCategories, breakdownCategory(classified, classified.Income))
			totalIncome = totalIncome.Add(classified.Income)
		case KindExpense:
			expenseCategories = append(expenseCategories, breakdownCategory(classified, classified.Expense))
			totalExpenses = totalExpenses.Add(classified.Expense)
		}
	}

	sortByAmount(incomeCategories)
	sortByAmount(expenseCategories)

	grandTotal := totalIncome.Add(totalExpenses)
	applyPercentages(incomeCategories, grandTotal)
	applyPercentages(expenseCategories, grandTotal)

	return BreakdownReport{
		Window:            window,
		IncomeCategories:  incomeCategories,
		ExpenseCategories: expenseCategories,
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		NetAmount:         totalIncome.Sub(totalExpenses),
		GrandTotal:        grandTotal,
	}
}

func breakdownCategory(classified ClassifiedCategory, amount decimal.Decimal) BreakdownCategory {
	return BreakdownCategory{
		ID:               classified.ID,
		Name:             classified.Name,
		Color:            classified.Color,
		Amount:           amount,
		TransactionCount: classified.TransactionCount,
		AverageAmount:    classified.AverageAmount,
	}
}

// sortByAmount orders descending by amount; ties keep input order.
func sortByAmount(categories []BreakdownCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})
}

// applyPercentages fills each category's share of grandTotal. A zero grand
// total short-circuits to zero percentages rather than dividing.
func applyPercentages(categories []BreakdownCategory, grandTotal decimal.Decimal) {
	if grandTotal.IsZero() {
		return
	}
	for i := range categories {
		categories[i].Percentage = categories[i].Amount.Mul(oneHundred).DivRound(grandTotal, 4)
	}
}

// Pivot builds the categories-by-months grid for a window. The month set is
// the union of every non-excluded category's trend months, collected in a
// first pass so row construction never depends on map iteration order; the
// second pass zero-fills each row against that set. An empty input yields
// zero columns, zero rows, and a zero grand total.
func Pivot(records []CategoryAggregate, window Window) PivotReport {
	classified := make([]ClassifiedCategory, 0, len(records))
	for _, record := range records {
		c := Classify(record)
		if c.Kind == KindExcluded {
			continue
		}
		classified = append(classified, c)
	}

	columns := monthColumns(classified)

	rows := make([]PivotRow, 0, len(classified))
	for _, c := range classified {
		byMonth := make([]decimal.Decimal, len(columns))
		for i, col := range columns {
			byMonth[i] = c.ByMonth[col.Key]
		}
		rows = append(rows, PivotRow{
			ID:      c.ID,
			Name:    c.Name,
			Color:   c.Color,
			Kind:    c.Kind,
			ByMonth: byMonth,
			Overall: c.Income.Sub(c.Expense),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Overall.Abs().GreaterThan(rows[j].Overall.Abs())
	})

	totals := make([]MonthTotal, len(columns))
	for _, row := range rows {
		for i, amount := range row.ByMonth {
			totals[i].Total = totals[i].Total.Add(amount)
			// The row's signed monthly amount flows into the bucket of its
			// classification, never re-signed.
			if row.Kind == KindIncome {
				totals[i].Income = totals[i].Income.Add(amount)
			} else {
				totals[i].Expense = totals[i].Expense.Add(amount)
			}
		}
	}

	var grandTotal MonthTotal
	for _, t := range totals {
		grandTotal.Income = grandTotal.Income.Add(t.Income)
		grandTotal.Expense = grandTotal.Expense.Add(t.Expense)
		grandTotal.Total = grandTotal.Total.Add(t.Total)
	}

	return PivotReport{
		Window:        window,
		MonthColumns:  columns,
		Rows:          rows,
		TotalsByMonth: totals,
		GrandTotal:    grandTotal,
	}
}

// monthColumns collects the sorted union of month keys across all
// classified categories. YYYY-MM keys sort lexicographically, which is
// chronological.
func monthColumns(classified []ClassifiedCategory) []MonthColumn {
	seen := make(map[string]struct{})
	var keys []string
	for _, c := range classified {
		for key := range c.ByMonth {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	columns := make([]MonthColumn, 0, len(keys))
	for _, key := range keys {
		// collapseTrend already dropped unparseable keys.
		t, err := time.Parse(monthLayout, key)
		if err != nil {
			continue
		}
		columns = append(columns, MonthColumn{
			Key:   key,
			Label: t.Format("Jan"),
			Year:  t.Year(),
		})
	}
	return columns
}
