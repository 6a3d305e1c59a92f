package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// mockReportService backs every report handler test in this package.
type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Breakdown(ctx context.Context, query service.ReportQuery) (*report.BreakdownReport, error) {
	args := m.Called(ctx, query)
	rep, _ := args.Get(0).(*report.BreakdownReport)
	return rep, args.Error(1)
}

func (m *mockReportService) Pivot(ctx context.Context, query service.ReportQuery) (*report.PivotReport, error) {
	args := m.Called(ctx, query)
	rep, _ := args.Get(0).(*report.PivotReport)
	return rep, args.Error(1)
}

func (m *mockReportService) ExportCSV(ctx context.Context, kind service.ReportKind, query service.ReportQuery) (string, string, error) {
	args := m.Called(ctx, kind, query)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockReportService) DrillDown(ctx context.Context, query service.ReportQuery, categoryID uuid.UUID, monthKey string) (*report.FilterSelection, error) {
	args := m.Called(ctx, query, categoryID, monthKey)
	selection, _ := args.Get(0).(*report.FilterSelection)
	return selection, args.Error(1)
}

func testWindow() report.Window {
	return report.Window{
		Start: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func newBreakdownTestAPI(t *testing.T, svc breakdownReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBreakdownHandler(svc).Register(api)
	return api
}

// -- parseReportQuery unit tests --

func TestParseReportQuery_Empty(t *testing.T) {
	query, err := parseReportQuery(ReportFilterBody{})
	assert.NoError(t, err)
	assert.True(t, query.Window.IsZero())
	assert.Empty(t, query.AccountIDs)
}

func TestParseReportQuery_ExplicitWindow(t *testing.T) {
	query, err := parseReportQuery(ReportFilterBody{
		StartDate: "2025-01-01",
		EndDate:   "2025-06-30",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2025-01-01", query.Window.StartString())
	assert.Equal(t, "2025-06-30", query.Window.EndString())
}

func TestParseReportQuery_StartWithoutEnd(t *testing.T) {
	_, err := parseReportQuery(ReportFilterBody{StartDate: "2025-01-01"})
	assert.Error(t, err)
}

func TestParseReportQuery_EndBeforeStart(t *testing.T) {
	_, err := parseReportQuery(ReportFilterBody{
		StartDate: "2025-06-30",
		EndDate:   "2025-01-01",
	})
	assert.Error(t, err)
}

func TestParseReportQuery_BadAccountID(t *testing.T) {
	_, err := parseReportQuery(ReportFilterBody{AccountIDs: []string{"not-a-uuid"}})
	assert.Error(t, err)
}

func TestParseReportQuery_AccountIDs(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	query, err := parseReportQuery(ReportFilterBody{AccountIDs: []string{accountID.String()}})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{accountID}, query.AccountIDs)
}

// -- HTTP integration tests --

func TestHTTP_Breakdown_Success(t *testing.T) {
	window := testWindow()
	salaryID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("Breakdown", mock.Anything, mock.MatchedBy(func(q service.ReportQuery) bool {
		return q.Window.IsZero() && len(q.AccountIDs) == 0
	})).Return(&report.BreakdownReport{
		Window: window,
		IncomeCategories: []report.BreakdownCategory{{
			ID:               salaryID,
			Name:             "Salary",
			Color:            "#00aa00",
			Amount:           decimal.RequireFromString("2000"),
			TransactionCount: 2,
			AverageAmount:    decimal.RequireFromString("1000"),
			Percentage:       decimal.RequireFromString("80"),
		}},
		ExpenseCategories: []report.BreakdownCategory{},
		TotalIncome:       decimal.RequireFromString("2000"),
		TotalExpenses:     decimal.RequireFromString("500"),
		NetAmount:         decimal.RequireFromString("1500"),
	}, nil)

	resp := newBreakdownTestAPI(t, mockSvc).Post("/v1/report/breakdown", ReportFilterBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body BreakdownResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-04-01", body.StartDate)
	assert.Equal(t, "2026-03-31", body.EndDate)
	assert.Len(t, body.IncomeCategories, 1)
	assert.Equal(t, salaryID.String(), body.IncomeCategories[0].ID)
	assert.Equal(t, "80", body.IncomeCategories[0].Percentage)
	assert.Equal(t, "1500", body.NetAmount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Breakdown_PassesWindowAndAccounts(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("Breakdown", mock.Anything, mock.MatchedBy(func(q service.ReportQuery) bool {
		return q.Window.StartString() == "2025-04-01" &&
			q.Window.EndString() == "2026-03-31" &&
			len(q.AccountIDs) == 1 && q.AccountIDs[0] == accountID
	})).Return(&report.BreakdownReport{Window: testWindow()}, nil)

	resp := newBreakdownTestAPI(t, mockSvc).Post("/v1/report/breakdown", ReportFilterBody{
		StartDate:  "2025-04-01",
		EndDate:    "2026-03-31",
		AccountIDs: []string{accountID.String()},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Breakdown_BadDates(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newBreakdownTestAPI(t, mockSvc).Post("/v1/report/breakdown", ReportFilterBody{
		StartDate: "2025-04-01",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Breakdown")
}

func TestHTTP_Breakdown_ServiceError(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("Breakdown", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	resp := newBreakdownTestAPI(t, mockSvc).Post("/v1/report/breakdown", ReportFilterBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
