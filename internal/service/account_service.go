package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor ActionProcessor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// CreateAccount opens an account and returns its ID.
func (s *AccountService) CreateAccount(ctx context.Context, account NewAccount) (uuid.UUID, error) {
	action := &actions.CreateAccount{
		Title:          account.Title,
		BankName:       account.BankName,
		InitialBalance: account.InitialBalance,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*finance.Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns every account, oldest first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]finance.Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	return accountsFromStorage(rows), nil
}

// ListBalances derives the current balance of every account. Accounts and
// transactions are read by two concurrent queries, so a write committed
// between them can show up in only one of the lists.
func (s *AccountService) ListBalances(ctx context.Context) (*Balances, error) {
	var (
		accounts     []finance.Account
		transactions []finance.Transaction
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		accounts, err = s.ListAccounts(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		transactions, err = loadTransactions(groupCtx, s.storage)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	balances := finance.AllBalances(accounts, transactions)
	return &Balances{
		Accounts: balances,
		Total:    finance.TotalBalance(balances),
	}, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, patch AccountPatch) error {
	return s.processor.Process(ctx, &actions.UpdateAccount{
		ID: id,
		Update: sqlconfig.AccountUpdate{
			Title:          patch.Title,
			BankName:       patch.BankName,
			InitialBalance: patch.InitialBalance,
		},
	})
}

// DeleteAccount removes an account and returns how many transactions were
// detached from it.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) (int64, error) {
	action := &actions.DeleteAccount{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Detached, nil
}
