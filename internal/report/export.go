package report

import (
	"strconv"
	"strings"
	"time"
)

// BreakdownCSV serializes a breakdown report as delimited text with a stable
// column order and two-decimal amounts. Expenses are emitted before income;
// empty sides are skipped. generatedAt stamps the header so output is
// deterministic under test.
func BreakdownCSV(rep BreakdownReport, generatedAt time.Time) string {
	lines := []string{
		"Category Report",
		"Generated," + generatedAt.UTC().Format(time.RFC3339),
		"Period," + rep.Window.StartString() + " to " + rep.Window.EndString(),
		"",
		"Summary",
		"Total Income," + rep.TotalIncome.StringFixed(2),
		"Total Expenses," + rep.TotalExpenses.StringFixed(2),
		"Net Amount," + rep.NetAmount.StringFixed(2),
	}

	if len(rep.ExpenseCategories) > 0 {
		lines = append(lines, "", "Expenses")
		lines = append(lines, breakdownSection(rep.ExpenseCategories)...)
	}
	if len(rep.IncomeCategories) > 0 {
		lines = append(lines, "", "Income")
		lines = append(lines, breakdownSection(rep.IncomeCategories)...)
	}

	return strings.Join(lines, "\n")
}

func breakdownSection(categories []BreakdownCategory) []string {
	lines := make([]string, 0, len(categories)+1)
	lines = append(lines, "Category,Amount,Transactions,Average,Percentage")
	for _, c := range categories {
		lines = append(lines, strings.Join([]string{
			csvField(c.Name),
			c.Amount.StringFixed(2),
			strconv.FormatInt(c.TransactionCount, 10),
			c.AverageAmount.StringFixed(2),
			c.Percentage.StringFixed(2) + "%",
		}, ","))
	}
	return lines
}

// PivotCSV serializes a pivot report: one column per month plus an Overall
// column, one row per category, and a final Total row. Inactive months are
// written as 0.00, never left blank.
func PivotCSV(rep PivotReport) string {
	header := make([]string, 0, len(rep.MonthColumns)+2)
	header = append(header, "Category")
	for _, col := range rep.MonthColumns {
		header = append(header, csvField(col.Label+" "+strconv.Itoa(col.Year)))
	}
	header = append(header, "Overall")

	lines := []string{strings.Join(header, ",")}
	for _, row := range rep.Rows {
		fields := make([]string, 0, len(row.ByMonth)+2)
		fields = append(fields, csvField(row.Name))
		for _, amount := range row.ByMonth {
			fields = append(fields, amount.StringFixed(2))
		}
		fields = append(fields, row.Overall.StringFixed(2))
		lines = append(lines, strings.Join(fields, ","))
	}

	totalFields := make([]string, 0, len(rep.TotalsByMonth)+2)
	totalFields = append(totalFields, "Total")
	for _, t := range rep.TotalsByMonth {
		totalFields = append(totalFields, t.Total.StringFixed(2))
	}
	totalFields = append(totalFields, rep.GrandTotal.Total.StringFixed(2))
	lines = append(lines, strings.Join(totalFields, ","))

	return strings.Join(lines, "\n")
}

// csvField applies RFC 4180 quoting. Category names are user-controlled and
// may carry commas or quotes.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
