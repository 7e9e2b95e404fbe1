package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor, now: time.Now}
}

// CreateTransaction records a transaction and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction NewTransaction) (uuid.UUID, error) {
	date := transaction.Date
	if date.IsZero() {
		date = s.now()
	}

	action := &actions.CreateTransaction{
		Amount:     transaction.Amount,
		Comment:    transaction.Comment,
		Type:       transaction.Type,
		Recurrence: transaction.Recurrence,
		Date:       date,
		AccountID:  transaction.AccountID,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*finance.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// ListTransactions returns the transactions matching criteria, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, criteria finance.Criteria) ([]finance.Transaction, error) {
	transactions, err := loadTransactions(ctx, s.storage)
	if err != nil {
		return nil, err
	}
	return finance.Filter(transactions, criteria), nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, patch TransactionPatch) error {
	return s.processor.Process(ctx, &actions.UpdateTransaction{ID: id, Update: patch.toStorage()})
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// loadTransactions reads the full transaction snapshot every derivation starts from.
func loadTransactions(ctx context.Context, store *storage.Storage) ([]finance.Transaction, error) {
	rows, err := store.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}
