package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// DrillDownBody is the request body for resolving a report cell.
type DrillDownBody struct {
	ReportFilterBody
	CategoryID string `json:"categoryID" doc:"Category UUID of the clicked row"`
	Month      string `json:"month,omitempty" doc:"Month key YYYY-MM for a single cell, absent for the whole row"`
}

// DrillDownInput is the Huma input for the drill-down resolution.
type DrillDownInput struct {
	Body DrillDownBody
}

// DrillDownResponseBody is the transaction filter a report cell resolves to.
type DrillDownResponseBody struct {
	CategoryID   string   `json:"categoryID" doc:"Category UUID"`
	CategoryName string   `json:"categoryName" doc:"Category display name"`
	StartDate    string   `json:"startDate" doc:"Inclusive filter start, YYYY-MM-DD"`
	EndDate      string   `json:"endDate" doc:"Inclusive filter end, YYYY-MM-DD"`
	AccountIDs   []string `json:"accountIDs,omitempty" doc:"Account UUIDs carried over from the report"`
}

// DrillDownOutput is the Huma output for the drill-down resolution.
type DrillDownOutput struct {
	Body DrillDownResponseBody
}

// drillDownResolver is the interface for resolving report cells.
type drillDownResolver interface {
	DrillDown(ctx context.Context, query service.ReportQuery, categoryID uuid.UUID, monthKey string) (*report.FilterSelection, error)
}

// DrillDownHandler handles POST /v1/report/drilldown.
type DrillDownHandler struct {
	ReportService drillDownResolver
}

// NewDrillDownHandler creates a new DrillDownHandler.
func NewDrillDownHandler(svc drillDownResolver) *DrillDownHandler {
	return &DrillDownHandler{ReportService: svc}
}

// Register registers the drill-down endpoint with the Huma API.
func (h *DrillDownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "drilldown-report",
		Method:      http.MethodPost,
		Path:        "/v1/report/drilldown",
		Summary:     "Resolve a report cell to a transaction filter",
		Description: "Maps a clicked category row or month cell to the transaction listing filter that shows the underlying transactions.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DrillDownHandler) handle(ctx context.Context, input *DrillDownInput) (*DrillDownOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseReportQuery(input.Body.ReportFilterBody)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category ID", err)
	}

	stopTimer := logData.AddTiming("drillDownMs")
	selection, err := h.ReportService.DrillDown(ctx, query, categoryID, input.Body.Month)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "category not found in report window", err)
	}

	resp := DrillDownResponseBody{
		CategoryID:   selection.CategoryID.String(),
		CategoryName: selection.CategoryName,
		StartDate:    selection.Window.StartString(),
		EndDate:      selection.Window.EndString(),
	}
	for _, id := range selection.AccountIDs {
		resp.AccountIDs = append(resp.AccountIDs, id.String())
	}

	return &DrillDownOutput{Body: resp}, nil
}
