package service

import (
	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// NewAccount is the input for opening an account.
type NewAccount struct {
	Title          string
	BankName       string
	InitialBalance decimal.Decimal
}

// AccountPatch changes only the fields that are set.
type AccountPatch struct {
	Title          omit.Val[string]
	BankName       omit.Val[string]
	InitialBalance omit.Val[decimal.Decimal]
}

// Balances is the accounts page: every account with its current balance,
// plus the sum over all of them.
type Balances struct {
	Accounts []finance.AccountBalance
	Total    decimal.Decimal
}

func accountFromStorage(row *sqlconfig.Account) finance.Account {
	return finance.Account{
		ID:             row.ID,
		Title:          row.Title,
		BankName:       row.BankName,
		InitialBalance: row.InitialBalance,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func accountsFromStorage(rows []*sqlconfig.Account) []finance.Account {
	converted := make([]finance.Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted
}
