package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         string `json:"id" doc:"Transaction UUID"`
	Amount     string `json:"amount" doc:"Positive decimal amount"`
	Comment    string `json:"comment" doc:"Free text comment"`
	Type       string `json:"type" enum:"expense,income" doc:"Direction of the transaction"`
	Recurrence string `json:"recurrence" enum:"one_off,monthly" doc:"one_off counts in its own month, monthly in every month"`
	Date       string `json:"date" doc:"RFC3339 transaction date"`
	AccountID  string `json:"accountId,omitempty" doc:"Account UUID, absent when not associated"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt  string `json:"updatedAt,omitempty" doc:"RFC3339 last update time"`
}

func toTransaction(t finance.Transaction) Transaction {
	resp := Transaction{
		ID:         t.ID.String(),
		Amount:     common.FormatMoney(t.Amount),
		Comment:    t.Comment,
		Type:       string(t.Type),
		Recurrence: string(t.Recurrence),
		Date:       t.Date.Format(time.RFC3339),
		AccountID:  common.FormatAccountRef(t.AccountID),
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
	if t.UpdatedAt != nil {
		resp.UpdatedAt = t.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
