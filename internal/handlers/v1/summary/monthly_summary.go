package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type MonthlySummaryInput struct {
	Month     string `query:"month" doc:"Calendar month YYYY-MM, defaults to the current month"`
	AccountID string `query:"accountId" doc:"Account UUID, or \"none\" for transactions without an account"`
}

type MonthlySummaryOutput struct {
	Body MonthlySummary
}

type monthlySummarizer interface {
	MonthlySummary(ctx context.Context, month time.Time, account finance.AccountCriterion) (finance.MonthlySummary, error)
}

// MonthlySummaryHandler handles GET /v1/summary/month.
type MonthlySummaryHandler struct {
	SummaryService monthlySummarizer
	now            func() time.Time
}

func NewMonthlySummaryHandler(svc monthlySummarizer) *MonthlySummaryHandler {
	return &MonthlySummaryHandler{SummaryService: svc, now: time.Now}
}

func (h *MonthlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/month",
		Summary:     "Monthly summary",
		Description: "Totals, net and recurring budget for one calendar month. Monthly transactions count in every month.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *MonthlySummaryHandler) handle(ctx context.Context, input *MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	month, err := common.ParseMonth("month", input.Month)
	if err != nil {
		return nil, err
	}
	if month.IsZero() {
		month = h.now().In(common.MonthLocation)
	}
	account, err := common.ParseAccountCriterion(input.AccountID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summary, err := h.SummaryService.MonthlySummary(ctx, month, account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to summarise month", err)
	}

	return &MonthlySummaryOutput{
		Body: toMonthlySummary(month.Format(finance.MonthLabelLayout), summary),
	}, nil
}
