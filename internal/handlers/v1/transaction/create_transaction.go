package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount     string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Comment    string `json:"comment,omitempty" doc:"Free text comment"`
	Type       string `json:"type" required:"true" enum:"expense,income" doc:"Direction of the transaction"`
	Recurrence string `json:"recurrence" required:"true" enum:"one_off,monthly" doc:"one_off or monthly"`
	Date       string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	AccountID  string `json:"accountId,omitempty" doc:"Account UUID; empty or \"none\" for no account"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.NewTransaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records an income or expense, optionally associated with an account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	amount, err := common.ParseDecimal("amount", input.Body.Amount)
	if err != nil {
		return service.NewTransaction{}, err
	}

	accountID, err := common.ParseAccountRef(input.Body.AccountID)
	if err != nil {
		return service.NewTransaction{}, err
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.NewTransaction{
		Amount:     amount,
		Comment:    input.Body.Comment,
		Type:       finance.TransactionType(input.Body.Type),
		Recurrence: finance.Recurrence(input.Body.Recurrence),
		Date:       date,
		AccountID:  accountID,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	transaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: id.String()},
	}, nil
}
