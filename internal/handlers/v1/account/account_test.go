package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/finance"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, account service.NewAccount) (uuid.UUID, error) {
	args := m.Called(ctx, account)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]finance.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]finance.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountService) ListBalances(ctx context.Context) (*service.Balances, error) {
	args := m.Called(ctx)
	balances, _ := args.Get(0).(*service.Balances)
	return balances, args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, id uuid.UUID, patch service.AccountPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	detached, _ := args.Get(0).(int64)
	return detached, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewListBalancesHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

func strPtr(s string) *string { return &s }

func testAccount(title, initialBalance string) finance.Account {
	return finance.Account{
		ID:             uuid.Must(uuid.NewV4()),
		Title:          title,
		BankName:       "Credit Union",
		InitialBalance: decimal.RequireFromString(initialBalance),
		CreatedAt:      time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC),
	}
}

// -- POST /v1/account --

func TestParseCreateAccountInput_DefaultsInitialBalance(t *testing.T) {
	account, err := parseCreateAccountInput(&CreateAccountInput{
		Body: CreateAccountBody{Title: "Checking", BankName: "Credit Union"},
	})

	assert.NoError(t, err)
	assert.True(t, account.InitialBalance.IsZero())
}

func TestHTTP_CreateAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a service.NewAccount) bool {
		return a.Title == "Checking" && a.BankName == "Credit Union" && a.InitialBalance.Equal(decimal.RequireFromString("-12.30"))
	})).Return(id, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{
		Title:          "Checking",
		BankName:       "Credit Union",
		InitialBalance: "-12.30",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_EmptyTitle(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{Title: "", BankName: "Bank"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_InvalidBalance(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{Title: "A", BankName: "B", InitialBalance: "lots"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_BlankTitleRejectedByService(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, mock.Anything).Return(uuid.Nil, actions.ErrInvalid)

	resp := newTestAPI(t, mockSvc).Post("/v1/account", CreateAccountBody{Title: "  ", BankName: "B"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// -- GET /v1/accounts --

func TestHTTP_ListAccounts_Success(t *testing.T) {
	first := testAccount("Checking", "100")
	second := testAccount("Savings", "0")
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything).Return([]finance.Account{first, second}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/accounts")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 2)
	assert.Equal(t, first.ID.String(), body.Accounts[0].ID)
	assert.Equal(t, "Checking", body.Accounts[0].Title)
	assert.Equal(t, "Credit Union", body.Accounts[0].BankName)
	assert.Equal(t, "100.00", body.Accounts[0].InitialBalance)
	assert.Equal(t, "2025-07-01T12:00:00Z", body.Accounts[0].CreatedAt)
	assert.Equal(t, "Savings", body.Accounts[1].Title)
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/v1/accounts")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

// -- GET /v1/accounts/balances --

func TestHTTP_ListBalances_Success(t *testing.T) {
	checking := testAccount("Checking", "100")
	mockSvc := new(mockAccountService)
	mockSvc.On("ListBalances", mock.Anything).Return(&service.Balances{
		Accounts: []finance.AccountBalance{{Account: checking, Balance: decimal.RequireFromString("120")}},
		Total:    decimal.RequireFromString("120"),
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/accounts/balances")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListBalancesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, checking.ID.String(), body.Accounts[0].Account.ID)
	assert.Equal(t, "120.00", body.Accounts[0].Balance)
	assert.Equal(t, "120.00", body.TotalBalance)
}

func TestHTTP_ListBalances_Empty(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListBalances", mock.Anything).Return(&service.Balances{Total: decimal.Zero}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/accounts/balances")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListBalancesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
	assert.Equal(t, "0.00", body.TotalBalance)
}

// -- PATCH /v1/account/{id} --

func TestHTTP_UpdateAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("UpdateAccount", mock.Anything, id, mock.MatchedBy(func(p service.AccountPatch) bool {
		balance, ok := p.InitialBalance.Get()
		return ok && balance.Equal(decimal.NewFromInt(50)) && p.Title.IsUnset() && p.BankName.IsUnset()
	})).Return(nil)

	resp := newTestAPI(t, mockSvc).Patch("/v1/account/"+id.String(), UpdateAccountBody{InitialBalance: strPtr("50")})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateAccount_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("UpdateAccount", mock.Anything, id, mock.Anything).Return(storage.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Patch("/v1/account/"+id.String(), UpdateAccountBody{Title: strPtr("Joint")})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- DELETE /v1/account/{id} --

func TestHTTP_DeleteAccount_ReportsDetachedTransactions(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAccountService)
	mockSvc.On("DeleteAccount", mock.Anything, id).Return(int64(2), nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/account/" + id.String())

	require.Equal(t, http.StatusOK, resp.Code)
	var body DeleteAccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.DetachedTransactions)
}

func TestHTTP_DeleteAccount_InvalidID(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newTestAPI(t, mockSvc).Delete("/v1/account/checking")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "DeleteAccount")
}
