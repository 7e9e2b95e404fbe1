package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Committer ends a database transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the tables bound to a single database transaction.
type Writer struct {
	tx           Committer
	Transactions sqlconfig.ITransactionTable
	Accounts     sqlconfig.IAccountTable
}

func NewWriter(tx bob.Tx) *Writer {
	return NewWriterWithTables(tx, sqlconfig.NewTransactionsTable(tx), sqlconfig.NewAccountsTable(tx))
}

// NewWriterWithTables builds a Writer from explicit tables sharing tx.
func NewWriterWithTables(tx Committer, transactions sqlconfig.ITransactionTable, accounts sqlconfig.IAccountTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Accounts:     accounts,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
