package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name             string `json:"name" required:"true" minLength:"1" doc:"Account name"`
	StartingBalance  string `json:"startingBalance,omitempty" doc:"Decimal starting balance, defaults to 0"`
	ExcludeFromStats bool   `json:"excludeFromStats,omitempty" doc:"Hide this account from statistics"`
	Note             string `json:"note,omitempty" doc:"Free-form note"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Creates a new account. The current balance starts at the starting balance.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateAccountInput parses and validates the API input into an action.
func parseCreateAccountInput(input *CreateAccountInput) (*actions.CreateAccount, error) {
	startingBalanceStr := input.Body.StartingBalance
	if startingBalanceStr == "" {
		startingBalanceStr = "0"
	}
	startingBalance, err := decimal.NewFromString(startingBalanceStr)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid startingBalance", err)
	}

	return &actions.CreateAccount{
		Name:             input.Body.Name,
		StartingBalance:  startingBalance,
		ExcludeFromStats: input.Body.ExcludeFromStats,
		Note:             input.Body.Note,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", action.Result.ID.String())
	}

	return &CreateAccountOutput{Body: fromStorage(action.Result)}, nil
}
