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

// UpdatePaymentBody is the request body for updating a payment. All fields
// replace the stored values; omitting the recurrence detaches the payment
// from its template.
type UpdatePaymentBody struct {
	Date             string          `json:"date" required:"true" format:"date-time" doc:"RFC3339 payment date"`
	Amount           string          `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Type             string          `json:"type" required:"true" enum:"expense,income,transfer" doc:"Payment type"`
	ChargedAccountID string          `json:"chargedAccountID" required:"true" format:"uuid" doc:"Account the payment is booked against"`
	TargetAccountID  string          `json:"targetAccountID,omitempty" format:"uuid" doc:"Receiving account, required for transfers"`
	CategoryID       string          `json:"categoryID,omitempty" format:"uuid" doc:"Category UUID"`
	Note             string          `json:"note,omitempty" doc:"Free-form note"`
	Recurrence       *RecurrenceBody `json:"recurrence,omitempty" doc:"Recurring template settings"`
	UpdateRecurring  bool            `json:"updateRecurring,omitempty" doc:"Also rewrite the linked recurring template"`
}

// UpdatePaymentInput is the Huma input for updating a payment.
type UpdatePaymentInput struct {
	ID   string `path:"id" format:"uuid" doc:"Payment UUID"`
	Body UpdatePaymentBody
}

// UpdatePaymentOutput is the Huma output for updating a payment.
type UpdatePaymentOutput struct {
	Body Payment
}

// UpdatePaymentHandler handles PUT /v1/payment/{id}.
type UpdatePaymentHandler struct {
	Operator actionProcessor
}

// NewUpdatePaymentHandler creates a new UpdatePaymentHandler.
func NewUpdatePaymentHandler(op actionProcessor) *UpdatePaymentHandler {
	return &UpdatePaymentHandler{Operator: op}
}

// Register registers the update payment endpoint with the Huma API.
func (h *UpdatePaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-payment",
		Method:      http.MethodPut,
		Path:        "/v1/payment/{id}",
		Summary:     "Update payment",
		Description: "Replaces a payment's fields and recalculates the balances of every account it touched before or after the edit.",
		Tags:        []string{"Payments"},
	}, h.handle)
}

// parseUpdatePaymentInput parses and validates the API input into an action.
func parseUpdatePaymentInput(input *UpdatePaymentInput) (*actions.UpdatePayment, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid payment id", err)
	}
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
	date, err := time.Parse(time.RFC3339, input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}
	paymentType, err := ledgerTypeFromString(input.Body.Type)
	if err != nil {
		return nil, err
	}
	recurrence, err := parseRecurrence(input.Body.Recurrence)
	if err != nil {
		return nil, err
	}

	return &actions.UpdatePayment{
		ID:               id,
		Date:             date,
		Amount:           amount,
		Type:             paymentType,
		ChargedAccountID: chargedAccountID,
		TargetAccountID:  targetAccountID,
		CategoryID:       categoryID,
		Note:             input.Body.Note,
		Recurrence:       recurrence,
		UpdateRecurring:  input.Body.UpdateRecurring,
	}, nil
}

func (h *UpdatePaymentHandler) handle(ctx context.Context, input *UpdatePaymentInput) (*UpdatePaymentOutput, error) {
	action, err := parseUpdatePaymentInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapActionError(err, "failed to update payment")
	}

	return &UpdatePaymentOutput{Body: fromStorage(action.Result)}, nil
}
