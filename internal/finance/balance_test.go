package finance

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

var balanceDate = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func TestCurrentBalance_Example(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	account := Account{ID: accountID, Title: "Checking", BankName: "Bank", InitialBalance: dec("100")}

	txs := []Transaction{
		withAccount(newTransaction(TypeIncome, RecurrenceOneOff, "50", balanceDate), accountID),
		withAccount(newTransaction(TypeExpense, RecurrenceOneOff, "30", balanceDate), accountID),
	}

	assert.Equal(t, "120", CurrentBalance(account, txs).String())
}

func TestCurrentBalance_NoMatchingTransactions(t *testing.T) {
	account := Account{ID: uuid.Must(uuid.NewV4()), InitialBalance: dec("-42.17")}
	other := uuid.Must(uuid.NewV4())

	txs := []Transaction{
		newTransaction(TypeIncome, RecurrenceOneOff, "10", balanceDate),
		withAccount(newTransaction(TypeExpense, RecurrenceMonthly, "99", balanceDate), other),
	}

	assert.True(t, CurrentBalance(account, txs).Equal(account.InitialBalance))
	assert.True(t, CurrentBalance(account, nil).Equal(account.InitialBalance))
}

func TestCurrentBalance_Linear(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	account := Account{ID: accountID, InitialBalance: dec("250.00")}
	txs := []Transaction{
		withAccount(newTransaction(TypeExpense, RecurrenceOneOff, "12.34", balanceDate), accountID),
	}
	base := CurrentBalance(account, txs)

	withIncome := append(append([]Transaction{}, txs...),
		withAccount(newTransaction(TypeIncome, RecurrenceOneOff, "7.5", balanceDate), accountID))
	assert.True(t, CurrentBalance(account, withIncome).Equal(base.Add(dec("7.5"))))

	withExpense := append(append([]Transaction{}, txs...),
		withAccount(newTransaction(TypeExpense, RecurrenceMonthly, "7.5", balanceDate), accountID))
	assert.True(t, CurrentBalance(account, withExpense).Equal(base.Sub(dec("7.5"))))
}

func TestCurrentBalance_DoesNotMutateInput(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	account := Account{ID: accountID, InitialBalance: dec("1")}
	txs := []Transaction{
		withAccount(newTransaction(TypeIncome, RecurrenceOneOff, "2", balanceDate), accountID),
	}
	snapshot := append([]Transaction{}, txs...)

	CurrentBalance(account, txs)

	assert.Equal(t, snapshot, txs)
}

func TestAllBalances_PreservesOrder(t *testing.T) {
	first := Account{ID: uuid.Must(uuid.NewV4()), Title: "Savings", InitialBalance: dec("1000")}
	second := Account{ID: uuid.Must(uuid.NewV4()), Title: "Checking", InitialBalance: dec("0")}
	txs := []Transaction{
		withAccount(newTransaction(TypeExpense, RecurrenceOneOff, "40", balanceDate), second.ID),
		withAccount(newTransaction(TypeIncome, RecurrenceOneOff, "5", balanceDate), first.ID),
		newTransaction(TypeIncome, RecurrenceOneOff, "500", balanceDate),
	}

	balances := AllBalances([]Account{first, second}, txs)

	assert.Len(t, balances, 2)
	assert.Equal(t, first.ID, balances[0].Account.ID)
	assert.Equal(t, "1005", balances[0].Balance.String())
	assert.Equal(t, second.ID, balances[1].Account.ID)
	assert.Equal(t, "-40", balances[1].Balance.String())
	assert.Equal(t, "965", TotalBalance(balances).String())
}

func TestAllBalances_Empty(t *testing.T) {
	balances := AllBalances(nil, []Transaction{newTransaction(TypeIncome, RecurrenceOneOff, "1", balanceDate)})

	assert.Empty(t, balances)
	assert.True(t, TotalBalance(balances).IsZero())
}
