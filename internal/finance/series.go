package finance

import "time"

const (
	// DefaultMonthsBack gives a rolling twelve month window ending at the current month.
	DefaultMonthsBack = 11

	// MonthLabelLayout formats series labels so they sort chronologically.
	MonthLabelLayout = "2006-01"
)

// MonthlySeries builds the series ending at the current month.
func MonthlySeries(transactions []Transaction, monthsBack int) []SeriesPoint {
	return MonthlySeriesAt(transactions, monthsBack, time.Now())
}

// MonthlySeriesAt returns monthsBack+1 points, oldest first, from the month
// monthsBack months before now through now's month. Each point is computed
// with MonthlySummaryFor.
func MonthlySeriesAt(transactions []Transaction, monthsBack int, now time.Time) []SeriesPoint {
	if monthsBack < 0 {
		monthsBack = 0
	}
	current, _ := MonthBounds(now)
	first := current.AddDate(0, -monthsBack, 0)

	points := make([]SeriesPoint, 0, monthsBack+1)
	for i := 0; i <= monthsBack; i++ {
		month := first.AddDate(0, i, 0)
		summary := MonthlySummaryFor(transactions, month)
		points = append(points, SeriesPoint{
			Month:         month,
			Label:         month.Format(MonthLabelLayout),
			TotalExpenses: summary.TotalExpenses,
			TotalIncome:   summary.TotalIncome,
			Net:           summary.Net,
		})
	}
	return points
}
