package account

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

// Account is the API response model for an account.
type Account struct {
	ID             string `json:"id" doc:"Account UUID"`
	Title          string `json:"title" doc:"Account title"`
	BankName       string `json:"bankName" doc:"Name of the bank holding the account"`
	InitialBalance string `json:"initialBalance" doc:"Signed decimal balance the account was opened with"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt      string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func toAccount(a finance.Account) Account {
	return Account{
		ID:             a.ID.String(),
		Title:          a.Title,
		BankName:       a.BankName,
		InitialBalance: common.FormatMoney(a.InitialBalance),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}
