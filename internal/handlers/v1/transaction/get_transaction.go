package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

type GetTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*finance.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	transaction, err := h.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		return nil, common.ServiceError("failed to get transaction", err)
	}

	return &GetTransactionOutput{Body: toTransaction(*transaction)}, nil
}
