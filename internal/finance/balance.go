package finance

import "github.com/shopspring/decimal"

// CurrentBalance returns the account's initial balance plus the income and
// minus the expenses of every transaction that references the account.
// Transactions with no account, or another account, are ignored.
func CurrentBalance(account Account, transactions []Transaction) decimal.Decimal {
	balance := account.InitialBalance
	for _, t := range transactions {
		if !t.BelongsTo(account.ID) {
			continue
		}
		balance = balance.Add(signedAmount(t))
	}
	return balance
}

// AllBalances computes CurrentBalance for every account, keeping the input order.
func AllBalances(accounts []Account, transactions []Transaction) []AccountBalance {
	balances := make([]AccountBalance, len(accounts))
	for i, account := range accounts {
		balances[i] = AccountBalance{
			Account: account,
			Balance: CurrentBalance(account, transactions),
		}
	}
	return balances
}

// TotalBalance sums a set of derived balances.
func TotalBalance(balances []AccountBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	return total
}

func signedAmount(t Transaction) decimal.Decimal {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
