package account

import (
	"context"
	"database/sql"
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

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	accountstore "github.com/carson-networks/ledger-server/internal/storage/account"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// mockAccountService is a mock for accountGetter and accountLister.
type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, cursor)
	var accounts []service.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]service.Account)
	}
	var next *service.AccountCursor
	if args.Get(1) != nil {
		next = args.Get(1).(*service.AccountCursor)
	}
	return accounts, next, args.Error(2)
}

func serviceAccount(name string) service.Account {
	return service.Account{
		ID:              uuid.Must(uuid.NewV4()),
		Name:            name,
		CurrentBalance:  decimal.RequireFromString("120.50"),
		StartingBalance: decimal.RequireFromString("100.00"),
		CreatedAt:       time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

// -- Create --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	stored := &accountstore.Account{
		ID:              uuid.Must(uuid.NewV4()),
		Name:            "Checking",
		CurrentBalance:  decimal.RequireFromString("100.00"),
		StartingBalance: decimal.RequireFromString("100.00"),
		CreatedAt:       time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateAccount)
		return ok && create.Name == "Checking" &&
			create.StartingBalance.Equal(decimal.RequireFromString("100.00"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateAccount).Result = stored
	}).Return(nil)

	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{
		Name:            "Checking",
		StartingBalance: "100.00",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.ID)
	assert.Equal(t, "100", body.CurrentBalance)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateAccount_DefaultsStartingBalanceToZero(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateAccount)
		return ok && create.StartingBalance.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateAccount).Result = &accountstore.Account{
			ID: uuid.Must(uuid.NewV4()), Name: "Wallet",
		}
	}).Return(nil)

	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{Name: "Wallet"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateAccount_MissingName(t *testing.T) {
	mockOp := new(mockProcessor)

	// Huma schema validation rejects the request before the handler runs.
	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateAccount_InvalidStartingBalance(t *testing.T) {
	mockOp := new(mockProcessor)

	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{
		Name:            "Checking",
		StartingBalance: "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateAccount_OperatorError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{Name: "Checking"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}

// -- Get --

func TestHTTP_GetAccount_Success(t *testing.T) {
	acct := serviceAccount("Checking")

	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, acct.ID).Return(&acct, nil)

	_, api := humatest.New(t)
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/" + acct.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, acct.ID.String(), body.ID)
	assert.Equal(t, "120.5", body.CurrentBalance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, mock.Anything).
		Return(nil, sql.ErrNoRows)

	_, api := humatest.New(t)
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_InvalidID(t *testing.T) {
	mockSvc := new(mockAccountService)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	_, api := humatest.New(t)
	NewGetAccountHandler(mockSvc).Register(api)

	resp := api.Get("/v1/account/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount")
}

// -- List --

func TestHTTP_ListAccounts_Success(t *testing.T) {
	accounts := []service.Account{serviceAccount("Checking"), serviceAccount("Savings")}

	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, (*service.AccountCursor)(nil)).
		Return(accounts, nil, nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Post("/v1/account/list", ListAccountsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 2)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_WithCursor(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, mock.MatchedBy(func(c *service.AccountCursor) bool {
		return c != nil && c.Position == 20 && c.Limit == 20
	})).Return([]service.Account{serviceAccount("Checking")}, &service.AccountCursor{Position: 40, Limit: 20}, nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Post("/v1/account/list", ListAccountsBody{
		Cursor: &ListAccountsCursor{Position: 20, Limit: 20},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.NotNil(t, body.NextCursor) {
		assert.Equal(t, 40, body.NextCursor.Position)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Post("/v1/account/list", ListAccountsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
