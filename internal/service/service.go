package service

import (
	"github.com/carson-networks/report-server/internal/operator"
	"github.com/carson-networks/report-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Report      *ReportService
	Transaction *TransactionService
	Account     *AccountService
}

// NewService creates a new Service with the given storage. The gate bounds
// concurrent report queries and may be nil, in which case queries run inline.
func NewService(store *storage.Storage, gate *operator.OperatorDelegator) *Service {
	return &Service{
		Report:      NewReportService(store, gate),
		Transaction: NewTransactionService(store),
		Account:     NewAccountService(store),
	}
}
