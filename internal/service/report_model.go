package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/report"
)

// ReportQuery bounds a report request. A zero Window means the current
// fiscal year. An empty AccountIDs slice means all accounts.
type ReportQuery struct {
	Window     report.Window
	AccountIDs []uuid.UUID
}

// ReportKind selects which report an export renders.
type ReportKind string

const (
	ReportKindBreakdown ReportKind = "breakdown"
	ReportKindPivot     ReportKind = "pivot"
)
