package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"Accounts, oldest first"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]finance.Account, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, err := h.AccountService.ListAccounts(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to list accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{Accounts: make([]Account, len(accounts))}
	for i, account := range accounts {
		resp.Accounts[i] = toAccount(account)
	}

	return &ListAccountsOutput{Body: resp}, nil
}
