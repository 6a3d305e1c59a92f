package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/operator"
	"github.com/carson-networks/report-server/internal/operator/actions"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/storage"
	"github.com/carson-networks/report-server/internal/storage/sqlconfig"
)

// ErrUnknownReportKind is returned when an export names a report kind the
// service does not render.
var ErrUnknownReportKind = errors.New("unknown report kind")

// ReportService builds category reports from transaction aggregates.
type ReportService struct {
	storage *storage.Storage
	gate    *operator.OperatorDelegator
	now     func() time.Time
}

// NewReportService creates a new ReportService. A nil gate runs queries inline.
func NewReportService(store *storage.Storage, gate *operator.OperatorDelegator) *ReportService {
	return &ReportService{
		storage: store,
		gate:    gate,
		now:     time.Now,
	}
}

// Breakdown returns the category breakdown report for the query window.
func (s *ReportService) Breakdown(ctx context.Context, query ReportQuery) (*report.BreakdownReport, error) {
	window := s.resolveWindow(query)

	records, err := s.fetchAggregates(ctx, window, query.AccountIDs)
	if err != nil {
		return nil, err
	}

	rep := report.Breakdown(records, window)
	return &rep, nil
}

// Pivot returns the month-by-month category report for the query window.
func (s *ReportService) Pivot(ctx context.Context, query ReportQuery) (*report.PivotReport, error) {
	window := s.resolveWindow(query)

	records, err := s.fetchAggregates(ctx, window, query.AccountIDs)
	if err != nil {
		return nil, err
	}

	rep := report.Pivot(records, window)
	return &rep, nil
}

// ExportCSV renders the named report as CSV and returns the document along
// with a download filename.
func (s *ReportService) ExportCSV(ctx context.Context, kind ReportKind, query ReportQuery) (string, string, error) {
	switch kind {
	case ReportKindBreakdown:
		rep, err := s.Breakdown(ctx, query)
		if err != nil {
			return "", "", err
		}
		filename := fmt.Sprintf("category-report-%s-to-%s.csv",
			rep.Window.StartString(), rep.Window.EndString())
		return report.BreakdownCSV(*rep, s.now()), filename, nil
	case ReportKindPivot:
		rep, err := s.Pivot(ctx, query)
		if err != nil {
			return "", "", err
		}
		filename := fmt.Sprintf("monthwise-category-report-%s-to-%s.csv",
			rep.Window.StartString(), rep.Window.EndString())
		return report.PivotCSV(*rep), filename, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownReportKind, kind)
	}
}

// DrillDown resolves a report cell into the transaction filter selection the
// caller should apply to list the underlying transactions.
func (s *ReportService) DrillDown(ctx context.Context, query ReportQuery, categoryID uuid.UUID, monthKey string) (*report.FilterSelection, error) {
	window := s.resolveWindow(query)

	category, err := s.findCategory(ctx, window, query.AccountIDs, categoryID)
	if err != nil {
		return nil, err
	}

	selection := report.DrillDown(categoryID, category.CategoryName, monthKey, window, query.AccountIDs)
	return &selection, nil
}

func (s *ReportService) resolveWindow(query ReportQuery) report.Window {
	if query.Window.IsZero() {
		return report.CurrentFiscalYear(s.now())
	}
	return query.Window
}

// fetchAggregates joins the per-category totals with their monthly activity
// into the engine's input records.
func (s *ReportService) fetchAggregates(ctx context.Context, window report.Window, accountIDs []uuid.UUID) ([]report.CategoryAggregate, error) {
	filter := &sqlconfig.ReportFilter{
		Start:      window.Start,
		End:        window.End,
		AccountIDs: accountIDs,
	}

	var totals []*sqlconfig.CategoryAggregateRow
	var activity []*sqlconfig.MonthlyActivityRow

	endTimer := logging.GetLogData(ctx).AddTiming("reportQueryTime")
	err := s.runQuery(ctx, actions.QueryFunc(func(ctx context.Context, store *storage.Storage) error {
		var err error
		totals, err = store.Reports.CategoryAggregates(ctx, filter)
		if err != nil {
			return err
		}
		activity, err = store.Reports.MonthlyActivity(ctx, filter)
		return err
	}))
	endTimer()
	if err != nil {
		return nil, err
	}

	trends := make(map[uuid.UUID][]report.MonthlyPoint)
	for _, row := range activity {
		trends[row.CategoryID] = append(trends[row.CategoryID], report.MonthlyPoint{
			Month:  row.Month,
			Amount: row.Amount,
			Count:  row.Count,
		})
	}

	records := make([]report.CategoryAggregate, len(totals))
	for i, row := range totals {
		records[i] = report.CategoryAggregate{
			ID:               row.CategoryID,
			Name:             row.CategoryName,
			Color:            row.CategoryColor,
			Income:           row.Income,
			Expense:          row.Expense,
			TransactionCount: row.TransactionCount,
			AverageAmount:    row.AverageAmount,
			MonthlyTrend:     trends[row.CategoryID],
		}
	}

	return records, nil
}

func (s *ReportService) findCategory(ctx context.Context, window report.Window, accountIDs []uuid.UUID, categoryID uuid.UUID) (*sqlconfig.CategoryAggregateRow, error) {
	filter := &sqlconfig.ReportFilter{
		Start:      window.Start,
		End:        window.End,
		AccountIDs: accountIDs,
	}

	var totals []*sqlconfig.CategoryAggregateRow
	err := s.runQuery(ctx, actions.QueryFunc(func(ctx context.Context, store *storage.Storage) error {
		var err error
		totals, err = store.Reports.CategoryAggregates(ctx, filter)
		return err
	}))
	if err != nil {
		return nil, err
	}

	for _, row := range totals {
		if row.CategoryID == categoryID {
			return row, nil
		}
	}
	return nil, fmt.Errorf("category %s has no activity in the report window", categoryID)
}

func (s *ReportService) runQuery(ctx context.Context, query actions.IQuery) error {
	if s.gate != nil {
		return s.gate.Process(ctx, query)
	}
	return query.Run(ctx, s.storage)
}
