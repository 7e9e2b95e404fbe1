package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ErrNotFound is returned by the tables when the targeted row does not exist.
var ErrNotFound = sqlconfig.ErrNotFound

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Accounts     sqlconfig.IAccountTable

	bobDB bob.DB
}

// NewStorage opens the postgres connection described by env. The connection
// is verified lazily by the first query.
func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened postgres connection.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Accounts:     sqlconfig.NewAccountsTable(bobDB),
		bobDB:        bobDB,
	}
}

// Write opens a database transaction and returns a Writer whose tables run inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
