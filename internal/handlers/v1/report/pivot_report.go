package report

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// PivotInput is the Huma input for the month-by-month report.
type PivotInput struct {
	Body ReportFilterBody
}

// PivotMonth is one month column of the pivot response.
type PivotMonth struct {
	Key   string `json:"key" doc:"Month key, YYYY-MM"`
	Label string `json:"label" doc:"Display label, e.g. Apr 2025"`
}

// PivotRow is one category row of the pivot response, with byMonth aligned
// to the months array.
type PivotRow struct {
	ID      string   `json:"id" doc:"Category UUID"`
	Name    string   `json:"name" doc:"Category name"`
	Color   string   `json:"color" doc:"Display color"`
	Kind    string   `json:"kind" enum:"income,expense" doc:"Whether the category counts as income or expense"`
	ByMonth []string `json:"byMonth" doc:"Signed decimal totals aligned to the months array"`
	Overall string   `json:"overall" doc:"Signed decimal total for the whole period"`
}

// PivotMonthTotal splits one month's total by row kind.
type PivotMonthTotal struct {
	Income  string `json:"income" doc:"Contribution of income rows"`
	Expense string `json:"expense" doc:"Contribution of expense rows"`
	Total   string `json:"total" doc:"income plus expense"`
}

// PivotResponseBody is the response body for the month-by-month report.
type PivotResponseBody struct {
	StartDate     string            `json:"startDate" doc:"Inclusive period start, YYYY-MM-DD"`
	EndDate       string            `json:"endDate" doc:"Inclusive period end, YYYY-MM-DD"`
	Months        []PivotMonth      `json:"months" doc:"Active month columns in ascending order"`
	Rows          []PivotRow        `json:"rows" doc:"Category rows, largest overall magnitude first"`
	TotalsByMonth []PivotMonthTotal `json:"totalsByMonth" doc:"Per-month totals aligned to the months array"`
	GrandTotal    PivotMonthTotal   `json:"grandTotal" doc:"Whole-period totals"`
}

// PivotOutput is the Huma output for the month-by-month report.
type PivotOutput struct {
	Body PivotResponseBody
}

// pivotReporter is the interface for building pivot reports.
type pivotReporter interface {
	Pivot(ctx context.Context, query service.ReportQuery) (*report.PivotReport, error)
}

// PivotHandler handles POST /v1/report/pivot.
type PivotHandler struct {
	ReportService pivotReporter
}

// NewPivotHandler creates a new PivotHandler.
func NewPivotHandler(svc pivotReporter) *PivotHandler {
	return &PivotHandler{ReportService: svc}
}

// Register registers the pivot report endpoint with the Huma API.
func (h *PivotHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pivot-report",
		Method:      http.MethodPost,
		Path:        "/v1/report/pivot",
		Summary:     "Month-by-month category report",
		Description: "Returns a categories-by-months grid of signed totals for a period. Defaults to the current fiscal year (April to March).",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *PivotHandler) handle(ctx context.Context, input *PivotInput) (*PivotOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseReportQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("pivotReportMs")
	rep, err := h.ReportService.Pivot(ctx, query)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build pivot report", err)
	}

	logData.AddData("monthCount", len(rep.MonthColumns))
	logData.AddData("rowCount", len(rep.Rows))

	resp := PivotResponseBody{
		StartDate:     rep.Window.StartString(),
		EndDate:       rep.Window.EndString(),
		Months:        make([]PivotMonth, len(rep.MonthColumns)),
		Rows:          make([]PivotRow, len(rep.Rows)),
		TotalsByMonth: make([]PivotMonthTotal, len(rep.TotalsByMonth)),
		GrandTotal:    pivotMonthTotal(rep.GrandTotal),
	}

	for i, col := range rep.MonthColumns {
		resp.Months[i] = PivotMonth{
			Key:   col.Key,
			Label: fmt.Sprintf("%s %d", col.Label, col.Year),
		}
	}

	for i, row := range rep.Rows {
		byMonth := make([]string, len(row.ByMonth))
		for j, amount := range row.ByMonth {
			byMonth[j] = amount.String()
		}
		resp.Rows[i] = PivotRow{
			ID:      row.ID.String(),
			Name:    row.Name,
			Color:   row.Color,
			Kind:    kindString(row.Kind),
			ByMonth: byMonth,
			Overall: row.Overall.String(),
		}
	}

	for i, total := range rep.TotalsByMonth {
		resp.TotalsByMonth[i] = pivotMonthTotal(total)
	}

	return &PivotOutput{Body: resp}, nil
}

func pivotMonthTotal(total report.MonthTotal) PivotMonthTotal {
	return PivotMonthTotal{
		Income:  total.Income.String(),
		Expense: total.Expense.String(),
		Total:   total.Total.String(),
	}
}
