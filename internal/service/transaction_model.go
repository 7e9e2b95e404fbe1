package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// NewTransaction is the input for recording a transaction. A zero Date means today.
type NewTransaction struct {
	Amount     decimal.Decimal
	Comment    string
	Type       finance.TransactionType
	Recurrence finance.Recurrence
	Date       time.Time
	AccountID  uuid.NullUUID
}

// TransactionPatch changes only the fields that are set. Setting AccountID
// to an invalid NullUUID detaches the transaction from its account.
type TransactionPatch struct {
	Amount     omit.Val[decimal.Decimal]
	Comment    omit.Val[string]
	Type       omit.Val[finance.TransactionType]
	Recurrence omit.Val[finance.Recurrence]
	Date       omit.Val[time.Time]
	AccountID  omit.Val[uuid.NullUUID]
}

func (p TransactionPatch) toStorage() sqlconfig.TransactionUpdate {
	update := sqlconfig.TransactionUpdate{
		Amount:    p.Amount,
		Comment:   p.Comment,
		Date:      p.Date,
		AccountID: p.AccountID,
	}
	if v, ok := p.Type.Get(); ok {
		update.Type = omit.From(string(v))
	}
	if v, ok := p.Recurrence.Get(); ok {
		update.Recurrence = omit.From(string(v))
	}
	return update
}

func transactionFromStorage(row *sqlconfig.Transaction) finance.Transaction {
	return finance.Transaction{
		ID:         row.ID,
		Amount:     row.Amount,
		Comment:    row.Comment,
		Type:       finance.TransactionType(row.Type),
		Recurrence: finance.Recurrence(row.Recurrence),
		Date:       row.Date,
		AccountID:  row.AccountID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []finance.Transaction {
	converted := make([]finance.Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted
}
