package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type testDeps struct {
	store        *storage.Storage
	transactions *sqlconfig.MockITransactionTable
	accounts     *sqlconfig.MockIAccountTable
	processor    *mockProcessor
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	transactions := sqlconfig.NewMockITransactionTable(t)
	accounts := sqlconfig.NewMockIAccountTable(t)
	processor := new(mockProcessor)
	t.Cleanup(func() { processor.AssertExpectations(t) })
	return testDeps{
		store:        &storage.Storage{Transactions: transactions, Accounts: accounts},
		transactions: transactions,
		accounts:     accounts,
		processor:    processor,
	}
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func storageTransaction(txType, recurrence, amount string, date time.Time, accountID uuid.NullUUID) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString(amount),
		Type:       txType,
		Recurrence: recurrence,
		Date:       date,
		AccountID:  accountID,
		CreatedAt:  date,
	}
}

func ref(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}
