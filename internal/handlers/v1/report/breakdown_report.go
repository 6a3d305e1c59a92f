package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// BreakdownInput is the Huma input for the breakdown report.
type BreakdownInput struct {
	Body ReportFilterBody
}

// BreakdownResponseBody is the response body for the breakdown report.
type BreakdownResponseBody struct {
	StartDate         string              `json:"startDate" doc:"Inclusive period start, YYYY-MM-DD"`
	EndDate           string              `json:"endDate" doc:"Inclusive period end, YYYY-MM-DD"`
	IncomeCategories  []BreakdownCategory `json:"incomeCategories" doc:"Income rows, largest first"`
	ExpenseCategories []BreakdownCategory `json:"expenseCategories" doc:"Expense rows, largest first"`
	TotalIncome       string              `json:"totalIncome" doc:"Decimal income total"`
	TotalExpenses     string              `json:"totalExpenses" doc:"Decimal expense total, positive magnitude"`
	NetAmount         string              `json:"netAmount" doc:"totalIncome minus totalExpenses"`
}

// BreakdownOutput is the Huma output for the breakdown report.
type BreakdownOutput struct {
	Body BreakdownResponseBody
}

// breakdownReporter is the interface for building breakdown reports.
type breakdownReporter interface {
	Breakdown(ctx context.Context, query service.ReportQuery) (*report.BreakdownReport, error)
}

// BreakdownHandler handles POST /v1/report/breakdown.
type BreakdownHandler struct {
	ReportService breakdownReporter
}

// NewBreakdownHandler creates a new BreakdownHandler.
func NewBreakdownHandler(svc breakdownReporter) *BreakdownHandler {
	return &BreakdownHandler{ReportService: svc}
}

// Register registers the breakdown report endpoint with the Huma API.
func (h *BreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "breakdown-report",
		Method:      http.MethodPost,
		Path:        "/v1/report/breakdown",
		Summary:     "Category breakdown report",
		Description: "Returns income and expense categories with totals and percentages for a period. Defaults to the current fiscal year (April to March).",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BreakdownHandler) handle(ctx context.Context, input *BreakdownInput) (*BreakdownOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseReportQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("breakdownReportMs")
	rep, err := h.ReportService.Breakdown(ctx, query)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build breakdown report", err)
	}

	logData.AddData("incomeCategoryCount", len(rep.IncomeCategories))
	logData.AddData("expenseCategoryCount", len(rep.ExpenseCategories))

	return &BreakdownOutput{Body: BreakdownResponseBody{
		StartDate:         rep.Window.StartString(),
		EndDate:           rep.Window.EndString(),
		IncomeCategories:  breakdownCategories(rep.IncomeCategories),
		ExpenseCategories: breakdownCategories(rep.ExpenseCategories),
		TotalIncome:       rep.TotalIncome.String(),
		TotalExpenses:     rep.TotalExpenses.String(),
		NetAmount:         rep.NetAmount.String(),
	}}, nil
}
