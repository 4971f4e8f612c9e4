package account

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/service"
)

// GetAccountInput is the Huma input for fetching a single account.
type GetAccountInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

// GetAccountOutput is the Huma output for fetching a single account.
type GetAccountOutput struct {
	Body Account
}

// accountGetter is the interface for fetching a single account.
type accountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get account",
		Description: "Returns a single account with its current balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	acct, err := h.AccountService.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get account", err)
	}

	return &GetAccountOutput{Body: fromService(*acct)}, nil
}
