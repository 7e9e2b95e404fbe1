package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	good := newTransaction(TypeExpense, RecurrenceOneOff, "0.01", time.Now())
	assert.NoError(t, good.Validate())

	zero := good
	zero.Amount = dec("0")
	assert.ErrorIs(t, zero.Validate(), ErrNonPositiveAmount)

	negative := good
	negative.Amount = dec("-3")
	assert.ErrorIs(t, negative.Validate(), ErrNonPositiveAmount)

	badType := good
	badType.Type = "transfer"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidType)

	tooPrecise := good
	tooPrecise.Amount = dec("0.00001")
	assert.ErrorIs(t, tooPrecise.Validate(), ErrMoneyPrecision)

	fourPlaces := good
	fourPlaces.Amount = dec("12.3456")
	assert.NoError(t, fourPlaces.Validate())

	tooLarge := good
	tooLarge.Amount = dec("1e16")
	assert.ErrorIs(t, tooLarge.Validate(), ErrMoneyOutOfRange)

	badRecurrence := good
	badRecurrence.Recurrence = "yearly"
	assert.ErrorIs(t, badRecurrence.Validate(), ErrInvalidRecurrence)
}

func TestAccountValidate(t *testing.T) {
	assert.NoError(t, Account{Title: "Main", BankName: "Bank", InitialBalance: dec("-10")}.Validate())
	assert.ErrorIs(t, Account{Title: "  ", BankName: "Bank"}.Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, Account{Title: "Main"}.Validate(), ErrEmptyBankName)
	assert.ErrorIs(t, Account{Title: "Main", BankName: "Bank", InitialBalance: dec("-1e30")}.Validate(), ErrMoneyOutOfRange)
	assert.ErrorIs(t, Account{Title: "Main", BankName: "Bank", InitialBalance: dec("1.23456")}.Validate(), ErrMoneyPrecision)
}

func TestValidateMoney(t *testing.T) {
	assert.NoError(t, ValidateMoney(dec("9999999999999999.9999")))
	assert.NoError(t, ValidateMoney(dec("-9999999999999999.9999")))
	assert.NoError(t, ValidateMoney(dec("0")))
	assert.NoError(t, ValidateMoney(dec("12.3400000")))
	assert.ErrorIs(t, ValidateMoney(dec("12.34567")), ErrMoneyPrecision)
	assert.ErrorIs(t, ValidateMoney(dec("-10000000000000000")), ErrMoneyOutOfRange)
}
