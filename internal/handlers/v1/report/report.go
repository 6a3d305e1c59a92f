package report

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// ReportFilterBody is the shared filter section of report request bodies.
// startDate and endDate must be given together; both absent selects the
// current fiscal year.
type ReportFilterBody struct {
	StartDate  string   `json:"startDate,omitempty" format:"date" doc:"Inclusive period start, YYYY-MM-DD"`
	EndDate    string   `json:"endDate,omitempty" format:"date" doc:"Inclusive period end, YYYY-MM-DD"`
	AccountIDs []string `json:"accountIDs,omitempty" doc:"Account UUIDs to include, empty means all accounts"`
}

// BreakdownCategory is the API model for one breakdown table row.
type BreakdownCategory struct {
	ID               string `json:"id" doc:"Category UUID"`
	Name             string `json:"name" doc:"Category name"`
	Color            string `json:"color" doc:"Display color"`
	Amount           string `json:"amount" doc:"Decimal total for the period"`
	TransactionCount int64  `json:"transactionCount" doc:"Number of transactions"`
	AverageAmount    string `json:"averageAmount" doc:"Decimal average per transaction"`
	Percentage       string `json:"percentage" doc:"Share of the combined activity, 0-100"`
}

// parseReportQuery validates the shared filter section into a service query.
func parseReportQuery(body ReportFilterBody) (service.ReportQuery, error) {
	var query service.ReportQuery

	if (body.StartDate == "") != (body.EndDate == "") {
		return query, huma.NewError(http.StatusBadRequest, "startDate and endDate must be given together")
	}

	if body.StartDate != "" {
		start, err := time.Parse(report.DateLayout, body.StartDate)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		end, err := time.Parse(report.DateLayout, body.EndDate)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		if end.Before(start) {
			return query, huma.NewError(http.StatusBadRequest, "endDate must not precede startDate")
		}
		query.Window = report.Window{Start: start, End: end}
	}

	for _, raw := range body.AccountIDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
		}
		query.AccountIDs = append(query.AccountIDs, id)
	}

	return query, nil
}

func kindString(k report.Kind) string {
	if k == report.KindExpense {
		return "expense"
	}
	return "income"
}

func breakdownCategories(categories []report.BreakdownCategory) []BreakdownCategory {
	result := make([]BreakdownCategory, len(categories))
	for i, c := range categories {
		result[i] = BreakdownCategory{
			ID:               c.ID.String(),
			Name:             c.Name,
			Color:            c.Color,
			Amount:           c.Amount.String(),
			TransactionCount: c.TransactionCount,
			AverageAmount:    c.AverageAmount.String(),
			Percentage:       c.Percentage.String(),
		}
	}
	return result
}
