package report

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/service"
)

func newExportTestAPI(t *testing.T, svc csvExporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewExportHandler(svc).Register(api)
	return api
}

func TestHTTP_Export_Breakdown(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ExportCSV", mock.Anything, service.ReportKindBreakdown, mock.Anything).
		Return("Category Report\n", "category-report-2025-04-01-to-2026-03-31.csv", nil)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/report/export?kind=breakdown")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="category-report-2025-04-01-to-2026-03-31.csv"`,
		resp.Header().Get("Content-Disposition"))
	assert.Equal(t, "Category Report\n", resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Export_PassesWindow(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ExportCSV", mock.Anything, service.ReportKindPivot, mock.MatchedBy(func(q service.ReportQuery) bool {
		return q.Window.StartString() == "2025-01-01" && q.Window.EndString() == "2025-12-31"
	})).Return("Category\n", "monthwise-category-report-2025-01-01-to-2025-12-31.csv", nil)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/report/export?kind=pivot&startDate=2025-01-01&endDate=2025-12-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Export_UnknownKind(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ExportCSV", mock.Anything, mock.Anything, mock.Anything).
		Return("", "", service.ErrUnknownReportKind)

	resp := newExportTestAPI(t, mockSvc).Get("/v1/report/export?kind=pivot")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_Export_ServiceError(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ExportCSV", mock.Anything, mock.Anything, mock.Anything).
		Return("", "", errors.New("connection refused"))

	resp := newExportTestAPI(t, mockSvc).Get("/v1/report/export?kind=breakdown")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
