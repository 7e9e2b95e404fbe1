package transaction

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockTransactionService implements every handler interface of this package.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, transaction service.NewTransaction) (uuid.UUID, error) {
	args := m.Called(ctx, transaction)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, criteria finance.Criteria) ([]finance.Transaction, error) {
	args := m.Called(ctx, criteria)
	txs, _ := args.Get(0).([]finance.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*finance.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, patch service.TransactionPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}
