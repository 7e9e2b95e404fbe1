package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID             uuid.UUID       `db:"id"`
	Title          string          `db:"title"`
	BankName       string          `db:"bank_name"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Title          string
	BankName       string
	InitialBalance decimal.Decimal
}

// AccountUpdate carries the fields to change. Unset fields are left untouched.
type AccountUpdate struct {
	Title          omit.Val[string]
	BankName       omit.Val[string]
	InitialBalance omit.Val[decimal.Decimal]
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IAccountTable --output . --outpkg sqlconfig --filename mock_IAccountTable.go --with-expecter
type IAccountTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
