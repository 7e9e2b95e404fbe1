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

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "amount", "comment", "type", "recurrence", "date", "account_id", "created_at", "updated_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable running its queries on exec,
// which is either the database or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction %s: %w", id, err)
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	date := create.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	query := psql.Insert(
		im.Into(transactionsTableName, "amount", "comment", "type", "recurrence", "date", "account_id"),
		im.Values(
			psql.Arg(create.Amount),
			psql.Arg(create.Comment),
			psql.Arg(create.Type),
			psql.Arg(create.Recurrence),
			psql.Arg(date),
			psql.Arg(create.AccountID),
		),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// List returns every transaction, most recent date first.
func (t *TransactionsTable) List(ctx context.Context) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return rows, nil
}

// Update applies the set fields of update and bumps updated_at.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(transactionsTableName),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Comment.Get(); ok {
		queryMods = append(queryMods, um.SetCol("comment").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.Recurrence.Get(); ok {
		queryMods = append(queryMods, um.SetCol("recurrence").ToArg(v))
	}
	if v, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(v))
	}
	if v, ok := update.AccountID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account_id").ToArg(v))
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return fmt.Errorf("update transaction %s: %w", id, err)
	}
	return requireAffected(result)
}

// Delete removes a transaction.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return requireAffected(result)
}

// DetachAccount clears the account reference of every transaction pointing at
// accountID and returns how many were detached.
func (t *TransactionsTable) DetachAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("account_id").ToArg(uuid.NullUUID{}),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return 0, fmt.Errorf("detach transactions from account %s: %w", accountID, err)
	}
	return result.RowsAffected()
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
