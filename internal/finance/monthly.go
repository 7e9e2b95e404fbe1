package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthBounds returns the first and last instants of the calendar month
// containing ref, in ref's location.
func MonthBounds(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// CountsInMonth is the rule deciding whether a transaction contributes to the
// month bounded by [start, end].
//
// A one-off transaction counts only when its date lies inside the bounds.
// A monthly transaction is a standing flow with no start or end date and
// counts in every month, including months before it was recorded.
func CountsInMonth(t Transaction, start, end time.Time) bool {
	if t.Recurrence == RecurrenceMonthly {
		return true
	}
	return !t.Date.Before(start) && !t.Date.After(end)
}

// MonthlySummaryFor aggregates the transactions counting toward the calendar
// month containing referenceMonth.
func MonthlySummaryFor(transactions []Transaction, referenceMonth time.Time) MonthlySummary {
	start, end := MonthBounds(referenceMonth)

	var summary MonthlySummary
	for _, t := range transactions {
		if !CountsInMonth(t, start, end) {
			continue
		}
		recurring := t.Recurrence == RecurrenceMonthly

		if t.Type == TypeExpense {
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			if recurring {
				summary.TotalRecurringExpenses = summary.TotalRecurringExpenses.Add(t.Amount)
			}
		} else {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			if recurring {
				summary.TotalRecurringIncome = summary.TotalRecurringIncome.Add(t.Amount)
			}
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.ProjectedMonthlyBudget = summary.TotalRecurringIncome.Sub(summary.TotalRecurringExpenses)
	return summary
}

// Totals splits a list of transactions into plain income and expense sums,
// without any month or recurrence logic.
func Totals(transactions []Transaction) FlowTotals {
	totals := FlowTotals{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, t := range transactions {
		if t.Type == TypeIncome {
			totals.TotalIncome = totals.TotalIncome.Add(t.Amount)
		} else {
			totals.TotalExpenses = totals.TotalExpenses.Add(t.Amount)
		}
	}
	return totals
}
