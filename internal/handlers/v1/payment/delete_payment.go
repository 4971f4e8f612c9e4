package payment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeletePaymentInput is the Huma input for deleting a payment.
type DeletePaymentInput struct {
	ID              string `path:"id" format:"uuid" doc:"Payment UUID"`
	DeleteRecurring bool   `query:"deleteRecurring" doc:"Also delete the linked recurring template"`
}

// DeletePaymentOutput is the Huma output for deleting a payment.
type DeletePaymentOutput struct {
	Status int
}

// DeletePaymentHandler handles DELETE /v1/payment/{id}.
type DeletePaymentHandler struct {
	Operator actionProcessor
}

// NewDeletePaymentHandler creates a new DeletePaymentHandler.
func NewDeletePaymentHandler(op actionProcessor) *DeletePaymentHandler {
	return &DeletePaymentHandler{Operator: op}
}

// Register registers the delete payment endpoint with the Huma API.
func (h *DeletePaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-payment",
		Method:        http.MethodDelete,
		Path:          "/v1/payment/{id}",
		Summary:       "Delete payment",
		Description:   "Removes a payment and recalculates the balances of every account it touched.",
		Tags:          []string{"Payments"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeletePaymentHandler) handle(ctx context.Context, input *DeletePaymentInput) (*DeletePaymentOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid payment id", err)
	}

	action := &actions.DeletePayment{
		ID:              id,
		DeleteRecurring: input.DeleteRecurring,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, mapActionError(err, "failed to delete payment")
	}

	return &DeletePaymentOutput{Status: http.StatusNoContent}, nil
}
