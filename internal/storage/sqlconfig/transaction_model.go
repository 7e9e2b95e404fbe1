package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID         uuid.UUID       `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	Comment    string          `db:"comment"`
	Type       string          `db:"type"`
	Recurrence string          `db:"recurrence"`
	Date       time.Time       `db:"date"`
	AccountID  uuid.NullUUID   `db:"account_id"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  *time.Time      `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Amount     decimal.Decimal
	Comment    string
	Type       string
	Recurrence string
	Date       time.Time // defaults to now if zero
	AccountID  uuid.NullUUID
}

// TransactionUpdate carries the fields to change. Unset fields are left untouched;
// an AccountID set to an invalid NullUUID detaches the transaction.
type TransactionUpdate struct {
	Amount     omit.Val[decimal.Decimal]
	Comment    omit.Val[string]
	Type       omit.Val[string]
	Recurrence omit.Val[string]
	Date       omit.Val[time.Time]
	AccountID  omit.Val[uuid.NullUUID]
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output . --outpkg sqlconfig --filename mock_ITransactionTable.go --with-expecter
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	DetachAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}
