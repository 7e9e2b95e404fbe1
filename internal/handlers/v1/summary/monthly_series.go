package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type MonthlySeriesInput struct {
	MonthsBack int    `query:"monthsBack" default:"11" minimum:"0" maximum:"120" doc:"Number of months before the current one"`
	AccountID  string `query:"accountId" doc:"Account UUID, or \"none\" for transactions without an account"`
}

type MonthlySeriesResponseBody struct {
	Points []SeriesPoint `json:"points" doc:"One point per month, oldest first, ending at the current month"`
}

type MonthlySeriesOutput struct {
	Body MonthlySeriesResponseBody
}

type seriesBuilder interface {
	MonthlySeries(ctx context.Context, monthsBack int, account finance.AccountCriterion) ([]finance.SeriesPoint, error)
}

// MonthlySeriesHandler handles GET /v1/summary/series.
type MonthlySeriesHandler struct {
	SummaryService seriesBuilder
}

func NewMonthlySeriesHandler(svc seriesBuilder) *MonthlySeriesHandler {
	return &MonthlySeriesHandler{SummaryService: svc}
}

func (h *MonthlySeriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-series",
		Method:      http.MethodGet,
		Path:        "/v1/summary/series",
		Summary:     "Monthly series",
		Description: "Income, expenses and net per month for charting.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *MonthlySeriesHandler) handle(ctx context.Context, input *MonthlySeriesInput) (*MonthlySeriesOutput, error) {
	logData := logging.GetLogData(ctx)

	account, err := common.ParseAccountCriterion(input.AccountID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySeriesMs")
	}
	points, err := h.SummaryService.MonthlySeries(ctx, input.MonthsBack, account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to build series", err)
	}

	resp := MonthlySeriesResponseBody{Points: make([]SeriesPoint, len(points))}
	for i, point := range points {
		resp.Points[i] = toSeriesPoint(point)
	}
	return &MonthlySeriesOutput{Body: resp}, nil
}
