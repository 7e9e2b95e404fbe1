package finance

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidRecurrence = errors.New("invalid transaction recurrence")
	ErrEmptyTitle        = errors.New("empty account title")
	ErrEmptyBankName     = errors.New("empty bank name")
	ErrMoneyPrecision    = errors.New("amount has more than 4 decimal places")
	ErrMoneyOutOfRange   = errors.New("amount has more than 16 integer digits")
)

// MoneyScale is the number of decimal places money columns keep.
const MoneyScale = 4

// Amounts are stored as NUMERIC(20, 4), so magnitudes must stay below 1e16.
var moneyLimit = decimal.New(1, 16)

func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

func (r Recurrence) Valid() bool {
	return r == RecurrenceOneOff || r == RecurrenceMonthly
}

// ValidateMoney checks that an amount is stored without rounding or overflow.
func ValidateMoney(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return ErrMoneyPrecision
	}
	if amount.Abs().GreaterThanOrEqual(moneyLimit) {
		return ErrMoneyOutOfRange
	}
	return nil
}

// ValidateAmount checks the positive amount invariant of a transaction.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return ValidateMoney(amount)
}

// Validate checks the fields a caller controls when recording a transaction.
// The derivation functions in this package never call it.
func (t Transaction) Validate() error {
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}
	return nil
}

// Validate checks the required account fields.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.BankName) == "" {
		return ErrEmptyBankName
	}
	return ValidateMoney(a.InitialBalance)
}
