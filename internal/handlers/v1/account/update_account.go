package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateAccountBody lists the fields to change. Absent fields are kept.
type UpdateAccountBody struct {
	Title          *string `json:"title,omitempty" minLength:"1" doc:"Account title"`
	BankName       *string `json:"bankName,omitempty" minLength:"1" doc:"Name of the bank"`
	InitialBalance *string `json:"initialBalance,omitempty" doc:"Signed opening balance"`
}

type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpdateAccountBody
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id uuid.UUID, patch service.AccountPatch) error
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-account",
		Method:        http.MethodPatch,
		Path:          "/v1/account/{id}",
		Summary:       "Update an account",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func parseUpdateAccountInput(input *UpdateAccountInput) (uuid.UUID, service.AccountPatch, error) {
	var patch service.AccountPatch

	id, err := common.ParseID(input.ID)
	if err != nil {
		return uuid.Nil, patch, err
	}
	if input.Body.Title != nil {
		patch.Title = omit.From(*input.Body.Title)
	}
	if input.Body.BankName != nil {
		patch.BankName = omit.From(*input.Body.BankName)
	}
	if input.Body.InitialBalance != nil {
		balance, err := common.ParseDecimal("initialBalance", *input.Body.InitialBalance)
		if err != nil {
			return uuid.Nil, patch, err
		}
		patch.InitialBalance = omit.From(balance)
	}
	return id, patch, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*struct{}, error) {
	id, patch, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.AccountService.UpdateAccount(ctx, id, patch); err != nil {
		return nil, common.ServiceError("failed to update account", err)
	}
	return &struct{}{}, nil
}
