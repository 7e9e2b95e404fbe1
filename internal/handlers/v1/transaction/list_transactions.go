package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ListTransactionsInput carries the optional filters. Set filters are combined with AND.
type ListTransactionsInput struct {
	Month      string `query:"month" doc:"Calendar month YYYY-MM, by transaction date"`
	Type       string `query:"type" doc:"expense or income"`
	Recurrence string `query:"recurrence" doc:"one_off or monthly"`
	AccountID  string `query:"accountId" doc:"Account UUID, or \"none\" for transactions without an account"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, criteria finance.Criteria) ([]finance.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
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
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns the transactions matching the given filters.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	criteria, err := common.ParseCriteria(input.Month, input.Type, input.Recurrence, input.AccountID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, criteria)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = toTransaction(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
