package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const accountsTableName = "accounts"

var accountColumns = []any{"id", "title", "bank_name", "initial_balance", "created_at", "updated_at"}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable running its queries on exec.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", id, err)
	}
	return row, nil
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(accountsTableName, "title", "bank_name", "initial_balance"),
		im.Values(
			psql.Arg(create.Title),
			psql.Arg(create.BankName),
			psql.Arg(create.InitialBalance),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert account: %w", err)
	}
	return id, nil
}

// List returns every account in creation order.
func (t *AccountsTable) List(ctx context.Context) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Account]())
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return rows, nil
}

// Update applies the set fields of update and bumps updated_at.
func (t *AccountsTable) Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(accountsTableName),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
	}
	if v, ok := update.Title.Get(); ok {
		queryMods = append(queryMods, um.SetCol("title").ToArg(v))
	}
	if v, ok := update.BankName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("bank_name").ToArg(v))
	}
	if v, ok := update.InitialBalance.Get(); ok {
		queryMods = append(queryMods, um.SetCol("initial_balance").ToArg(v))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return fmt.Errorf("update account %s: %w", id, err)
	}
	return requireAffected(result)
}

// Delete removes an account. Transactions referencing it are not deleted.
func (t *AccountsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(accountsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}
	return requireAffected(result)
}
