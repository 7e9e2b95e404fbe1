package actions

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Title          string
	BankName       string
	InitialBalance decimal.Decimal

	CreatedID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	candidate := finance.Account{Title: c.Title, BankName: c.BankName, InitialBalance: c.InitialBalance}
	if err := candidate.Validate(); err != nil {
		return invalid(err)
	}

	id, err := writer.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		Title:          strings.TrimSpace(c.Title),
		BankName:       strings.TrimSpace(c.BankName),
		InitialBalance: c.InitialBalance,
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}

func (c *CreateAccount) Events() []events.Event {
	return []events.Event{events.NewEvent(events.KindCreated, events.EntityAccount, c.CreatedID)}
}

type UpdateAccount struct {
	ID     uuid.UUID
	Update sqlconfig.AccountUpdate
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	update := u.Update
	if title, ok := update.Title.Get(); ok {
		title = strings.TrimSpace(title)
		if title == "" {
			return invalid(finance.ErrEmptyTitle)
		}
		update.Title = omit.From(title)
	}
	if bankName, ok := update.BankName.Get(); ok {
		bankName = strings.TrimSpace(bankName)
		if bankName == "" {
			return invalid(finance.ErrEmptyBankName)
		}
		update.BankName = omit.From(bankName)
	}
	if balance, ok := update.InitialBalance.Get(); ok {
		if err := finance.ValidateMoney(balance); err != nil {
			return invalid(err)
		}
	}

	return writer.Accounts.Update(ctx, u.ID, &update)
}

func (u *UpdateAccount) Events() []events.Event {
	return []events.Event{events.NewEvent(events.KindUpdated, events.EntityAccount, u.ID)}
}

// DeleteAccount removes an account. Its transactions are kept and become
// unassociated.
type DeleteAccount struct {
	ID uuid.UUID

	Detached int64
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Accounts.FindByID(ctx, d.ID); err != nil {
		return err
	}

	detached, err := writer.Transactions.DetachAccount(ctx, d.ID)
	if err != nil {
		return err
	}
	d.Detached = detached

	return writer.Accounts.Delete(ctx, d.ID)
}

func (d *DeleteAccount) Events() []events.Event {
	return []events.Event{events.NewEvent(events.KindDeleted, events.EntityAccount, d.ID)}
}
