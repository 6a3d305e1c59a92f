package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/service"
)

// ExportInput is the Huma input for the CSV export.
type ExportInput struct {
	Kind       string   `query:"kind" enum:"breakdown,pivot" doc:"Which report to export"`
	StartDate  string   `query:"startDate" doc:"Inclusive period start, YYYY-MM-DD"`
	EndDate    string   `query:"endDate" doc:"Inclusive period end, YYYY-MM-DD"`
	AccountIDs []string `query:"accountIDs" doc:"Account UUIDs to include, empty means all accounts"`
}

// ExportOutput is the Huma output for the CSV export. The body is the raw
// CSV document.
type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// csvExporter is the interface for rendering report exports.
type csvExporter interface {
	ExportCSV(ctx context.Context, kind service.ReportKind, query service.ReportQuery) (string, string, error)
}

// ExportHandler handles GET /v1/report/export.
type ExportHandler struct {
	ReportService csvExporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc csvExporter) *ExportHandler {
	return &ExportHandler{ReportService: svc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-report",
		Method:      http.MethodGet,
		Path:        "/v1/report/export",
		Summary:     "Export a report as CSV",
		Description: "Renders the breakdown or pivot report as a CSV download. Defaults to the current fiscal year (April to March).",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ExportHandler) handle(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseReportQuery(ReportFilterBody{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		AccountIDs: input.AccountIDs,
	})
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("exportReportMs")
	csv, filename, err := h.ReportService.ExportCSV(ctx, service.ReportKind(input.Kind), query)
	stopTimer()
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportKind) {
			return nil, huma.NewError(http.StatusBadRequest, "unknown report kind", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to export report", err)
	}

	logData.AddData("exportKind", input.Kind)
	logData.AddData("exportBytes", len(csv))

	return &ExportOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", filename),
		Body:               []byte(csv),
	}, nil
}
