package summary

import (
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

// MonthlySummary is the API response model for one month of figures.
type MonthlySummary struct {
	Month                  string `json:"month" doc:"Calendar month YYYY-MM"`
	TotalExpenses          string `json:"totalExpenses" doc:"Expenses counted in the month, monthly ones included"`
	TotalIncome            string `json:"totalIncome" doc:"Income counted in the month, monthly ones included"`
	Net                    string `json:"net" doc:"Income minus expenses"`
	TotalRecurringExpenses string `json:"totalRecurringExpenses" doc:"Sum of monthly expenses"`
	TotalRecurringIncome   string `json:"totalRecurringIncome" doc:"Sum of monthly income"`
	ProjectedMonthlyBudget string `json:"projectedMonthlyBudget" doc:"Recurring income minus recurring expenses"`
}

// SeriesPoint is one month of the chart series.
type SeriesPoint struct {
	Label         string `json:"label" doc:"Calendar month YYYY-MM"`
	TotalExpenses string `json:"totalExpenses"`
	TotalIncome   string `json:"totalIncome"`
	Net           string `json:"net"`
}

func toMonthlySummary(label string, s finance.MonthlySummary) MonthlySummary {
	return MonthlySummary{
		Month:                  label,
		TotalExpenses:          common.FormatMoney(s.TotalExpenses),
		TotalIncome:            common.FormatMoney(s.TotalIncome),
		Net:                    common.FormatMoney(s.Net),
		TotalRecurringExpenses: common.FormatMoney(s.TotalRecurringExpenses),
		TotalRecurringIncome:   common.FormatMoney(s.TotalRecurringIncome),
		ProjectedMonthlyBudget: common.FormatMoney(s.ProjectedMonthlyBudget),
	}
}

func toSeriesPoint(p finance.SeriesPoint) SeriesPoint {
	return SeriesPoint{
		Label:         p.Label,
		TotalExpenses: common.FormatMoney(p.TotalExpenses),
		TotalIncome:   common.FormatMoney(p.TotalIncome),
		Net:           common.FormatMoney(p.Net),
	}
}
