package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/report-server/internal/logging"
	"github.com/carson-networks/report-server/internal/report"
	"github.com/carson-networks/report-server/internal/service"
)

// ListTransactionsBody is the request body for listing transactions. Its
// filter section matches what a report drill-down resolves to, so a cell
// selection can be posted here unchanged.
type ListTransactionsBody struct {
	CategoryID string   `json:"categoryID,omitempty" doc:"Only transactions in this category"`
	AccountIDs []string `json:"accountIDs,omitempty" doc:"Only transactions in these accounts"`
	StartDate  string   `json:"startDate,omitempty" format:"date" doc:"Inclusive date lower bound, YYYY-MM-DD"`
	EndDate    string   `json:"endDate,omitempty" format:"date" doc:"Inclusive date upper bound, YYYY-MM-DD"`
	Limit      int      `json:"limit,omitempty" minimum:"0" maximum:"100" doc:"Page size, default 20"`
	Offset     int      `json:"offset,omitempty" minimum:"0" doc:"Numeric offset for pagination"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	HasMore      bool          `json:"hasMore" doc:"Whether another page exists beyond this one"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter *service.TransactionListFilter) ([]service.Transaction, bool, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a filtered page of transactions, newest first. Accepts the filter a report drill-down resolves to.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionListFilter, error) {
	filter := &service.TransactionListFilter{
		Limit:  input.Body.Limit,
		Offset: input.Body.Offset,
	}

	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid category ID", err)
		}
		filter.CategoryID = &categoryID
	}

	for _, raw := range input.Body.AccountIDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
		}
		filter.AccountIDs = append(filter.AccountIDs, id)
	}

	if input.Body.StartDate != "" {
		from, err := time.Parse(report.DateLayout, input.Body.StartDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.DateFrom = &from
	}

	if input.Body.EndDate != "" {
		to, err := time.Parse(report.DateLayout, input.Body.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		filter.DateTo = &to
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, huma.NewError(http.StatusBadRequest, "endDate must not precede startDate")
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	transactions, hasMore, err := h.TransactionService.ListTransactions(ctx, filter)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	logData.AddData("transactionCount", len(transactions))

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
		HasMore:      hasMore,
	}

	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:              tx.ID.String(),
			AccountID:       tx.AccountID.String(),
			CategoryID:      tx.CategoryID.String(),
			Amount:          tx.Amount.String(),
			TransactionName: tx.TransactionName,
			TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
