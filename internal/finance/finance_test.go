package finance

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func accountRef(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func newTransaction(txType TransactionType, recurrence Recurrence, amount string, date time.Time) Transaction {
	return Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		Amount:     dec(amount),
		Type:       txType,
		Recurrence: recurrence,
		Date:       date,
		CreatedAt:  date,
	}
}

func withAccount(t Transaction, id uuid.UUID) Transaction {
	t.AccountID = accountRef(id)
	return t
}
