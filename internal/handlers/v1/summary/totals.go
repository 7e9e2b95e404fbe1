package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

// TotalsInput takes the same filters as the transaction list.
type TotalsInput struct {
	Month      string `query:"month" doc:"Calendar month YYYY-MM, by transaction date"`
	Type       string `query:"type" doc:"expense or income"`
	Recurrence string `query:"recurrence" doc:"one_off or monthly"`
	AccountID  string `query:"accountId" doc:"Account UUID, or \"none\" for transactions without an account"`
}

type TotalsResponseBody struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
}

type TotalsOutput struct {
	Body TotalsResponseBody
}

type totalsCalculator interface {
	Totals(ctx context.Context, criteria finance.Criteria) (finance.FlowTotals, error)
}

// TotalsHandler handles GET /v1/summary/totals.
type TotalsHandler struct {
	SummaryService totalsCalculator
}

func NewTotalsHandler(svc totalsCalculator) *TotalsHandler {
	return &TotalsHandler{SummaryService: svc}
}

func (h *TotalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "flow-totals",
		Method:      http.MethodGet,
		Path:        "/v1/summary/totals",
		Summary:     "Income and expense totals",
		Description: "Plain income and expense sums over the filtered transactions. Recurrence does not multiply amounts.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *TotalsHandler) handle(ctx context.Context, input *TotalsInput) (*TotalsOutput, error) {
	criteria, err := common.ParseCriteria(input.Month, input.Type, input.Recurrence, input.AccountID)
	if err != nil {
		return nil, err
	}

	totals, err := h.SummaryService.Totals(ctx, criteria)
	if err != nil {
		return nil, common.ServiceError("failed to compute totals", err)
	}

	return &TotalsOutput{Body: TotalsResponseBody{
		TotalIncome:   common.FormatMoney(totals.TotalIncome),
		TotalExpenses: common.FormatMoney(totals.TotalExpenses),
	}}, nil
}
