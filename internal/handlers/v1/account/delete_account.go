package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type DeleteAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

type DeleteAccountResponse struct {
	DetachedTransactions int64 `json:"detachedTransactions" doc:"Transactions kept without an account"`
}

type DeleteAccountOutput struct {
	Body DeleteAccountResponse
}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id uuid.UUID) (int64, error)
}

// DeleteAccountHandler handles DELETE /v1/account/{id}. The account's
// transactions are kept and lose their account.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{id}",
		Summary:     "Delete an account",
		Description: "Deletes an account. Its transactions are kept without an account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	detached, err := h.AccountService.DeleteAccount(ctx, id)
	if err != nil {
		return nil, common.ServiceError("failed to delete account", err)
	}

	if logData != nil {
		logData.AddData("detachedTransactions", detached)
	}

	return &DeleteAccountOutput{Body: DeleteAccountResponse{DetachedTransactions: detached}}, nil
}
