package report

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/report"
)

func newDrillDownTestAPI(t *testing.T, svc drillDownResolver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDrillDownHandler(svc).Register(api)
	return api
}

func TestHTTP_DrillDown_MonthCell(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("DrillDown", mock.Anything, mock.Anything, categoryID, "2025-06").
		Return(&report.FilterSelection{
			CategoryID:   categoryID,
			CategoryName: "Food",
			Window: report.Window{
				Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	resp := newDrillDownTestAPI(t, mockSvc).Post("/v1/report/drilldown", DrillDownBody{
		CategoryID: categoryID.String(),
		Month:      "2025-06",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DrillDownResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, categoryID.String(), body.CategoryID)
	assert.Equal(t, "Food", body.CategoryName)
	assert.Equal(t, "2025-06-01", body.StartDate)
	assert.Equal(t, "2025-06-30", body.EndDate)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DrillDown_BadCategoryID(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newDrillDownTestAPI(t, mockSvc).Post("/v1/report/drilldown", DrillDownBody{
		CategoryID: "not-a-uuid",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "DrillDown")
}

func TestHTTP_DrillDown_UnknownCategory(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("DrillDown", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("category has no activity"))

	resp := newDrillDownTestAPI(t, mockSvc).Post("/v1/report/drilldown", DrillDownBody{
		CategoryID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
