package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Title          string `json:"title" minLength:"1" doc:"Account title"`
	BankName       string `json:"bankName" minLength:"1" doc:"Name of the bank"`
	InitialBalance string `json:"initialBalance,omitempty" doc:"Signed opening balance (e.g. '0' or '-1234.56'), defaults to 0"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, account service.NewAccount) (uuid.UUID, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given title, bank name and initial balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.NewAccount, error) {
	initialBalance := decimal.Zero
	if input.Body.InitialBalance != "" {
		var err error
		initialBalance, err = common.ParseDecimal("initialBalance", input.Body.InitialBalance)
		if err != nil {
			return service.NewAccount{}, err
		}
	}

	return service.NewAccount{
		Title:          input.Body.Title,
		BankName:       input.Body.BankName,
		InitialBalance: initialBalance,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	account, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	id, err := h.AccountService.CreateAccount(ctx, account)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError("failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: id.String()},
	}, nil
}
