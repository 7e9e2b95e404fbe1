package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, id); err != nil {
		return nil, common.ServiceError("failed to delete transaction", err)
	}
	return &struct{}{}, nil
}
