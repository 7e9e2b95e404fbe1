package finance

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction. Amounts are always
// positive; the type carries the sign.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Recurrence tells whether a transaction is a dated event or a standing monthly flow.
type Recurrence string

const (
	RecurrenceOneOff  Recurrence = "one_off"
	RecurrenceMonthly Recurrence = "monthly"
)

// Transaction is a single income or expense record.
type Transaction struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	Comment    string
	Type       TransactionType
	Recurrence Recurrence
	Date       time.Time
	AccountID  uuid.NullUUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// BelongsTo reports whether the transaction is associated with the given account.
func (t Transaction) BelongsTo(accountID uuid.UUID) bool {
	return t.AccountID.Valid && t.AccountID.UUID == accountID
}

// Account is a bank account holding an initial balance.
type Account struct {
	ID             uuid.UUID
	Title          string
	BankName       string
	InitialBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountBalance pairs an account with its derived current balance.
type AccountBalance struct {
	Account Account
	Balance decimal.Decimal
}

// MonthlySummary holds the totals derived for one calendar month.
type MonthlySummary struct {
	TotalExpenses          decimal.Decimal
	TotalIncome            decimal.Decimal
	Net                    decimal.Decimal
	TotalRecurringExpenses decimal.Decimal
	TotalRecurringIncome   decimal.Decimal
	ProjectedMonthlyBudget decimal.Decimal
}

// SeriesPoint is one month of a chartable series.
type SeriesPoint struct {
	Month         time.Time
	Label         string
	TotalExpenses decimal.Decimal
	TotalIncome   decimal.Decimal
	Net           decimal.Decimal
}

// FlowTotals is the plain income/expense split of a list of transactions.
type FlowTotals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}
