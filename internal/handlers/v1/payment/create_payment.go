package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreatePaymentBody is the request body for creating a payment.
type CreatePaymentBody struct {
	Date             string          `json:"date,omitempty" format:"date-time" doc:"RFC3339 payment date, defaults to now"`
	Amount           string          `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Type             string          `json:"type" required:"true" enum:"expense,income,transfer" doc:"Payment type"`
	ChargedAccountID string          `json:"chargedAccountID" required:"true" format:"uuid" doc:"Account the payment is booked against"`
	TargetAccountID  string          `json:"targetAccountID,omitempty" format:"uuid" doc:"Receiving account, required for transfers"`
	CategoryID       string          `json:"categoryID,omitempty" format:"uuid" doc:"Category UUID"`
	Note             string          `json:"note,omitempty" doc:"Free-form note"`
	Recurrence       *RecurrenceBody `json:"recurrence,omitempty" doc:"Recurring template to create with this payment"`
}

// CreatePaymentInput is the Huma input for creating a payment.
type CreatePaymentInput struct {
	Body CreatePaymentBody
}

// CreatePaymentOutput is the Huma output for creating a payment.
type CreatePaymentOutput struct {
	Body Payment
}

// CreatePaymentHandler handles POST /v1/payment.
type CreatePaymentHandler struct {
	Operator actionProcessor
}

// NewCreatePaymentHandler creates a new CreatePaymentHandler.
func NewCreatePaymentHandler(op actionProcessor) *CreatePaymentHandler {
	return &CreatePaymentHandler{Operator: op}
}

// Register registers the create payment endpoint with the Huma API.
func (h *CreatePaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-payment",
		Method:        http.MethodPost,
		Path:          "/v1/payment",
		Summary:       "Create payment",
		Description:   "Creates a payment and recalculates the balances of every account it touches.",
		Tags:          []string{"Payments"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreatePaymentInput parses and validates the API input into an action.
func parseCreatePaymentInput(input *CreatePaymentInput) (*actions.CreatePayment, error) {
	chargedAccountID, err := uuid.FromString(input.Body.ChargedAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid chargedAccountID", err)
	}
	targetAccountID, err := parseOptionalUUID(input.Body.TargetAccountID, "targetAccountID")
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalUUID(input.Body.CategoryID, "categoryID")
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	} else {
		date = time.Now()
	}

	paymentType, err := ledgerTypeFromString(input.Body.Type)
	if err != nil {
		return nil, err
	}

	recurrence, err := parseRecurrence(input.Body.Recurrence)
	if err != nil {
		return nil, err
	}

	return &actions.CreatePayment{
		Date:             date,
		Amount:           amount,
		Type:             paymentType,
		ChargedAccountID: chargedAccountID,
		TargetAccountID:  targetAccountID,
		CategoryID:       categoryID,
		Note:             input.Body.Note,
		Recurrence:       recurrence,
	}, nil
}

func (h *CreatePaymentHandler) handle(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error) {
	action, err := parseCreatePaymentInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapActionError(err, "failed to create payment")
	}

	return &CreatePaymentOutput{Body: fromStorage(action.Result)}, nil
}
