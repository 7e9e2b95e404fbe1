package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ActionProcessor runs write actions. It is satisfied by the operator delegator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Summary     *SummaryService
}

// NewService creates a new Service. Reads go straight to store, writes go
// through processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Account:     NewAccountService(store, processor),
		Summary:     NewSummaryService(store),
	}
}
