package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
)

// The aggregate queries need FILTER clauses and date_trunc, which the
// generated query mods cannot express, so this table speaks SQL directly.

const categoryAggregatesQuery = `
SELECT c.id,
       c.name,
       c.color,
       COALESCE(SUM(t.amount) FILTER (WHERE t.amount > 0), 0) AS income,
       COALESCE(SUM(t.amount) FILTER (WHERE t.amount < 0), 0) AS expense,
       COUNT(t.id)                                            AS transaction_count,
       COALESCE(AVG(t.amount), 0)                             AS average_amount
FROM categories c
         JOIN transactions t ON t.category_id = c.id
WHERE t.transaction_date BETWEEN $1 AND $2
  AND (cardinality($3::uuid[]) = 0 OR t.account_id = ANY ($3::uuid[]))
GROUP BY c.id, c.name, c.color
ORDER BY c.name, c.id`

const monthlyActivityQuery = `
SELECT t.category_id,
       to_char(date_trunc('month', t.transaction_date), 'YYYY-MM') AS month,
       SUM(t.amount)                                               AS amount,
       COUNT(t.id)                                                 AS transaction_count
FROM transactions t
WHERE t.transaction_date BETWEEN $1 AND $2
  AND (cardinality($3::uuid[]) = 0 OR t.account_id = ANY ($3::uuid[]))
GROUP BY t.category_id, month
ORDER BY t.category_id, month`

var _ ICategoryReportTable = (*CategoryReportTable)(nil)

// CategoryReportTable runs the read-only aggregate queries behind reports.
type CategoryReportTable struct {
	db *sql.DB
}

func NewCategoryReportTable(db *sql.DB) CategoryReportTable {
	return CategoryReportTable{db: db}
}

// CategoryAggregates returns per-category totals for the filter window.
func (t *CategoryReportTable) CategoryAggregates(ctx context.Context, filter *ReportFilter) ([]*CategoryAggregateRow, error) {
	rows, err := t.db.QueryContext(ctx, categoryAggregatesQuery,
		filter.Start, filter.End, pq.Array(uuidStrings(filter.AccountIDs)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*CategoryAggregateRow
	for rows.Next() {
		row := &CategoryAggregateRow{}
		err = rows.Scan(
			&row.CategoryID,
			&row.CategoryName,
			&row.CategoryColor,
			&row.Income,
			&row.Expense,
			&row.TransactionCount,
			&row.AverageAmount,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// MonthlyActivity returns per-category month buckets for the filter window.
func (t *CategoryReportTable) MonthlyActivity(ctx context.Context, filter *ReportFilter) ([]*MonthlyActivityRow, error) {
	rows, err := t.db.QueryContext(ctx, monthlyActivityQuery,
		filter.Start, filter.End, pq.Array(uuidStrings(filter.AccountIDs)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*MonthlyActivityRow
	for rows.Next() {
		row := &MonthlyActivityRow{}
		err = rows.Scan(&row.CategoryID, &row.Month, &row.Amount, &row.Count)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
