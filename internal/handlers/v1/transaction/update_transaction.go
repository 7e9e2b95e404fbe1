package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateTransactionBody lists the fields to change. Absent fields are kept.
type UpdateTransactionBody struct {
	Amount     *string `json:"amount,omitempty" doc:"Positive decimal amount"`
	Comment    *string `json:"comment,omitempty" doc:"Free text comment"`
	Type       *string `json:"type,omitempty" enum:"expense,income" doc:"Direction of the transaction"`
	Recurrence *string `json:"recurrence,omitempty" enum:"one_off,monthly" doc:"one_off or monthly"`
	Date       *string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date"`
	AccountID  *string `json:"accountId,omitempty" doc:"Account UUID, or \"none\" to detach"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, patch service.TransactionPatch) error
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPatch,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Changes the given fields of a transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionPatch, error) {
	var patch service.TransactionPatch

	id, err := common.ParseID(input.ID)
	if err != nil {
		return uuid.Nil, patch, err
	}

	body := input.Body
	if body.Amount != nil {
		amount, err := common.ParseDecimal("amount", *body.Amount)
		if err != nil {
			return uuid.Nil, patch, err
		}
		patch.Amount = omit.From(amount)
	}
	if body.Comment != nil {
		patch.Comment = omit.From(*body.Comment)
	}
	if body.Type != nil {
		patch.Type = omit.From(finance.TransactionType(*body.Type))
	}
	if body.Recurrence != nil {
		patch.Recurrence = omit.From(finance.Recurrence(*body.Recurrence))
	}
	if body.Date != nil {
		date, err := time.Parse(time.RFC3339, *body.Date)
		if err != nil {
			return uuid.Nil, patch, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		patch.Date = omit.From(date)
	}
	if body.AccountID != nil {
		accountID, err := common.ParseAccountRef(*body.AccountID)
		if err != nil {
			return uuid.Nil, patch, err
		}
		patch.AccountID = omit.From(accountID)
	}

	return id, patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)

	id, patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	err = h.TransactionService.UpdateTransaction(ctx, id, patch)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to update transaction", err)
	}

	return &struct{}{}, nil
}
