package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// AccountBalance is an account with its balance derived from its transactions.
type AccountBalance struct {
	Account Account `json:"account"`
	Balance string  `json:"balance" doc:"Initial balance plus income minus expenses"`
}

type ListBalancesResponseBody struct {
	Accounts     []AccountBalance `json:"accounts" doc:"Accounts with their current balance, oldest first"`
	TotalBalance string           `json:"totalBalance" doc:"Sum of all current balances"`
}

type ListBalancesOutput struct {
	Body ListBalancesResponseBody
}

type balanceLister interface {
	ListBalances(ctx context.Context) (*service.Balances, error)
}

// ListBalancesHandler handles GET /v1/accounts/balances.
type ListBalancesHandler struct {
	AccountService balanceLister
}

func NewListBalancesHandler(svc balanceLister) *ListBalancesHandler {
	return &ListBalancesHandler{AccountService: svc}
}

func (h *ListBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-balances",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/balances",
		Summary:     "List account balances",
		Description: "Returns every account with its current balance and the total over all accounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListBalancesHandler) handle(ctx context.Context, _ *struct{}) (*ListBalancesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBalancesMs")
	}
	balances, err := h.AccountService.ListBalances(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to list balances", err)
	}

	resp := ListBalancesResponseBody{
		Accounts:     make([]AccountBalance, len(balances.Accounts)),
		TotalBalance: common.FormatMoney(balances.Total),
	}
	for i, balance := range balances.Accounts {
		resp.Accounts[i] = AccountBalance{
			Account: toAccount(balance.Account),
			Balance: common.FormatMoney(balance.Balance),
		}
	}

	return &ListBalancesOutput{Body: resp}, nil
}
