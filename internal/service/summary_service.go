package service

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SummaryService derives dashboard figures. Nothing is cached; every call
// reads a fresh snapshot.
type SummaryService struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store, now: time.Now}
}

// MonthlySummary summarises the month containing month over the transactions
// selected by account.
func (s *SummaryService) MonthlySummary(ctx context.Context, month time.Time, account finance.AccountCriterion) (finance.MonthlySummary, error) {
	transactions, err := s.load(ctx, account)
	if err != nil {
		return finance.MonthlySummary{}, err
	}
	return finance.MonthlySummaryFor(transactions, month), nil
}

// MonthlySeries returns monthsBack+1 points ending at the current month.
func (s *SummaryService) MonthlySeries(ctx context.Context, monthsBack int, account finance.AccountCriterion) ([]finance.SeriesPoint, error) {
	transactions, err := s.load(ctx, account)
	if err != nil {
		return nil, err
	}
	return finance.MonthlySeriesAt(transactions, monthsBack, s.now()), nil
}

// Totals sums income and expenses over the transactions matching criteria.
func (s *SummaryService) Totals(ctx context.Context, criteria finance.Criteria) (finance.FlowTotals, error) {
	transactions, err := loadTransactions(ctx, s.storage)
	if err != nil {
		return finance.FlowTotals{}, err
	}
	return finance.Totals(finance.Filter(transactions, criteria)), nil
}

func (s *SummaryService) load(ctx context.Context, account finance.AccountCriterion) ([]finance.Transaction, error) {
	transactions, err := loadTransactions(ctx, s.storage)
	if err != nil {
		return nil, err
	}
	if account.IsAny() {
		return transactions, nil
	}
	return finance.Filter(transactions, finance.Criteria{Account: account}), nil
}
