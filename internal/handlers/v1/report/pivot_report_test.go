package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/report"
)

func newPivotTestAPI(t *testing.T, svc pivotReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewPivotHandler(svc).Register(api)
	return api
}

func TestHTTP_Pivot_Success(t *testing.T) {
	foodID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("Pivot", mock.Anything, mock.Anything).Return(&report.PivotReport{
		Window: testWindow(),
		MonthColumns: []report.MonthColumn{
			{Key: "2025-04", Label: "Apr", Year: 2025},
			{Key: "2025-05", Label: "May", Year: 2025},
		},
		Rows: []report.PivotRow{{
			ID:    foodID,
			Name:  "Food",
			Color: "#cc0000",
			Kind:  report.KindExpense,
			ByMonth: []decimal.Decimal{
				decimal.RequireFromString("-100"),
				decimal.RequireFromString("-50"),
			},
			Overall: decimal.RequireFromString("-150"),
		}},
		TotalsByMonth: []report.MonthTotal{
			{Expense: decimal.RequireFromString("-100"), Total: decimal.RequireFromString("-100")},
			{Expense: decimal.RequireFromString("-50"), Total: decimal.RequireFromString("-50")},
		},
		GrandTotal: report.MonthTotal{
			Expense: decimal.RequireFromString("-150"),
			Total:   decimal.RequireFromString("-150"),
		},
	}, nil)

	resp := newPivotTestAPI(t, mockSvc).Post("/v1/report/pivot", ReportFilterBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PivotResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Months, 2)
	assert.Equal(t, "Apr 2025", body.Months[0].Label)
	assert.Len(t, body.Rows, 1)
	assert.Equal(t, "expense", body.Rows[0].Kind)
	assert.Equal(t, []string{"-100", "-50"}, body.Rows[0].ByMonth)
	assert.Equal(t, "-150", body.Rows[0].Overall)
	assert.Equal(t, "-150", body.GrandTotal.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Pivot_BadAccountID(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newPivotTestAPI(t, mockSvc).Post("/v1/report/pivot", ReportFilterBody{
		AccountIDs: []string{"nope"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Pivot")
}

func TestHTTP_Pivot_ServiceError(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("Pivot", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	resp := newPivotTestAPI(t, mockSvc).Post("/v1/report/pivot", ReportFilterBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
