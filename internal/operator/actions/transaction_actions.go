package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Amount     decimal.Decimal
	Comment    string
	Type       finance.TransactionType
	Recurrence finance.Recurrence
	Date       time.Time
	AccountID  uuid.NullUUID

	CreatedID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	candidate := finance.Transaction{
		Amount:     t.Amount,
		Type:       t.Type,
		Recurrence: t.Recurrence,
	}
	if err := candidate.Validate(); err != nil {
		return invalid(err)
	}
	if err := requireAccount(ctx, writer, t.AccountID); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Amount:     t.Amount,
		Comment:    t.Comment,
		Type:       string(t.Type),
		Recurrence: string(t.Recurrence),
		Date:       t.Date,
		AccountID:  t.AccountID,
	})
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}

func (t *CreateTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.KindCreated, events.EntityTransaction, t.CreatedID)}
}

type UpdateTransaction struct {
	ID     uuid.UUID
	Update sqlconfig.TransactionUpdate
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if amount, ok := t.Update.Amount.Get(); ok {
		if err := finance.ValidateAmount(amount); err != nil {
			return invalid(err)
		}
	}
	if txType, ok := t.Update.Type.Get(); ok && !finance.TransactionType(txType).Valid() {
		return invalid(finance.ErrInvalidType)
	}
	if recurrence, ok := t.Update.Recurrence.Get(); ok && !finance.Recurrence(recurrence).Valid() {
		return invalid(finance.ErrInvalidRecurrence)
	}
	if accountID, ok := t.Update.AccountID.Get(); ok {
		if err := requireAccount(ctx, writer, accountID); err != nil {
			return err
		}
	}

	return writer.Transactions.Update(ctx, t.ID, &t.Update)
}

func (t *UpdateTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.KindUpdated, events.EntityTransaction, t.ID)}
}

type DeleteTransaction struct {
	ID uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, t.ID)
}

func (t *DeleteTransaction) Events() []events.Event {
	return []events.Event{events.NewEvent(events.KindDeleted, events.EntityTransaction, t.ID)}
}

func requireAccount(ctx context.Context, writer *storage.Writer, accountID uuid.NullUUID) error {
	if !accountID.Valid {
		return nil
	}
	_, err := writer.Accounts.FindByID(ctx, accountID.UUID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrAccountNotFound
	}
	return err
}
