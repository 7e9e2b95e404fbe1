package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func summaryRows(accountID uuid.UUID) []*sqlconfig.Transaction {
	return []*sqlconfig.Transaction{
		storageTransaction("income", "monthly", "2000", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ref(accountID)),
		storageTransaction("expense", "monthly", "800", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), uuid.NullUUID{}),
		storageTransaction("expense", "one_off", "120", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), ref(accountID)),
		storageTransaction("income", "one_off", "75", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), uuid.NullUUID{}),
	}
}

func TestMonthlySummary_AllAccounts(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewSummaryService(deps.store)

	deps.transactions.EXPECT().List(mock.Anything).Return(summaryRows(uuid.Must(uuid.NewV4())), nil)

	summary, err := svc.MonthlySummary(context.Background(), time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), finance.AnyAccount())

	require.NoError(t, err)
	assert.Equal(t, "2000", summary.TotalIncome.String())
	assert.Equal(t, "920", summary.TotalExpenses.String())
	assert.Equal(t, "1080", summary.Net.String())
	assert.Equal(t, "1200", summary.ProjectedMonthlyBudget.String())
}

func TestMonthlySummary_SingleAccount(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewSummaryService(deps.store)

	accountID := uuid.Must(uuid.NewV4())
	deps.transactions.EXPECT().List(mock.Anything).Return(summaryRows(accountID), nil)

	summary, err := svc.MonthlySummary(context.Background(), time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), finance.ForAccount(accountID))

	require.NoError(t, err)
	assert.Equal(t, "2000", summary.TotalIncome.String())
	assert.Equal(t, "120", summary.TotalExpenses.String())
	assert.Equal(t, "0", summary.TotalRecurringExpenses.String())
}

func TestMonthlySummary_StorageError(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewSummaryService(deps.store)

	deps.transactions.EXPECT().List(mock.Anything).Return(nil, errors.New("database unavailable"))

	_, err := svc.MonthlySummary(context.Background(), time.Now(), finance.AnyAccount())

	assert.EqualError(t, err, "database unavailable")
}

func TestMonthlySeries_UsesClock(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewSummaryService(deps.store)
	svc.now = fixedClock(time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC))

	deps.transactions.EXPECT().List(mock.Anything).Return(summaryRows(uuid.Must(uuid.NewV4())), nil)

	points, err := svc.MonthlySeries(context.Background(), 2, finance.NoAccount())

	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, []string{"2025-03", "2025-04", "2025-05"}, []string{points[0].Label, points[1].Label, points[2].Label})
	assert.Equal(t, "800", points[0].TotalExpenses.String())
	assert.Equal(t, "75", points[1].TotalIncome.String())
	assert.Equal(t, "-800", points[2].Net.String())
}

func TestTotals_FiltersFirst(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewSummaryService(deps.store)

	deps.transactions.EXPECT().List(mock.Anything).Return(summaryRows(uuid.Must(uuid.NewV4())), nil)

	totals, err := svc.Totals(context.Background(), finance.Criteria{Recurrence: finance.RecurrenceOneOff})

	require.NoError(t, err)
	assert.Equal(t, "75", totals.TotalIncome.String())
	assert.Equal(t, "120", totals.TotalExpenses.String())
}
