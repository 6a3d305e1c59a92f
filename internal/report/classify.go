package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classify resolves the reporting kind of a category aggregate.
//
// The policy is dominance by magnitude: a category is an expense when its
// absolute spend exceeds its income, otherwise income; it is excluded only
// when it shows no activity at all. A category is never both income and
// expense within one report. The scalar Expense field is normalized to a
// magnitude because producers disagree on its sign; MonthlyTrend amounts
// keep the sign the producer gave them so the pivot displays them as-is.
func Classify(record CategoryAggregate) ClassifiedCategory {
	income := record.Income
	expense := record.Expense.Abs()

	kind := KindIncome
	switch {
	case income.IsZero() && expense.IsZero():
		kind = KindExcluded
	case expense.GreaterThan(income):
		kind = KindExpense
	}

	normalized := record
	normalized.Expense = expense

	return ClassifiedCategory{
		CategoryAggregate: normalized,
		Kind:              kind,
		ByMonth:           collapseTrend(record.MonthlyTrend),
	}
}

// collapseTrend folds the sparse trend into a month-keyed map, summing
// duplicate entries and dropping keys that are not valid YYYY-MM months.
// A nil trend yields an empty map; the category still contributes its
// scalar totals.
func collapseTrend(trend []MonthlyPoint) map[string]decimal.Decimal {
	byMonth := make(map[string]decimal.Decimal, len(trend))
	for _, point := range trend {
		if _, err := time.Parse(monthLayout, point.Month); err != nil {
			continue
		}
		byMonth[point.Month] = byMonth[point.Month].Add(point.Amount)
	}
	return byMonth
}
