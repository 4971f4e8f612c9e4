package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListPaymentsBody is the request body for listing an account's payments.
type ListPaymentsBody struct {
	AccountID string `json:"accountID" required:"true" format:"uuid" doc:"Account whose payments to list, both sides of transfers included"`
	From      string `json:"from,omitempty" format:"date-time" doc:"Inclusive lower date bound"`
	To        string `json:"to,omitempty" format:"date-time" doc:"Inclusive upper date bound"`
}

// ListPaymentsInput is the Huma input for listing payments.
type ListPaymentsInput struct {
	Body ListPaymentsBody
}

// ListPaymentsResponseBody is the response body for listing payments.
type ListPaymentsResponseBody struct {
	Payments []Payment `json:"payments" doc:"Payments ordered oldest first"`
}

// ListPaymentsOutput is the Huma output for listing payments.
type ListPaymentsOutput struct {
	Body ListPaymentsResponseBody
}

// paymentLister is the interface for listing payments.
type paymentLister interface {
	ListPayments(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]service.Payment, error)
}

// ListPaymentsHandler handles POST /v1/payment/list.
type ListPaymentsHandler struct {
	PaymentService paymentLister
}

// NewListPaymentsHandler creates a new ListPaymentsHandler.
func NewListPaymentsHandler(svc paymentLister) *ListPaymentsHandler {
	return &ListPaymentsHandler{PaymentService: svc}
}

// Register registers the list payments endpoint with the Huma API.
func (h *ListPaymentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-payments",
		Method:      http.MethodPost,
		Path:        "/v1/payment/list",
		Summary:     "List payments",
		Description: "Returns every payment charged to or targeting the account, optionally bounded by a date window.",
		Tags:        []string{"Payments"},
	}, h.handle)
}

// parseListPaymentsInput parses and validates the API input.
func parseListPaymentsInput(input *ListPaymentsInput) (accountID uuid.UUID, from, to time.Time, err error) {
	accountID, err = uuid.FromString(input.Body.AccountID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	if input.Body.From != "" {
		from, err = time.Parse(time.RFC3339, input.Body.From)
		if err != nil {
			return uuid.Nil, time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
	}
	if input.Body.To != "" {
		to, err = time.Parse(time.RFC3339, input.Body.To)
		if err != nil {
			return uuid.Nil, time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return uuid.Nil, time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "to date before from date")
	}

	return accountID, from, to, nil
}

func (h *ListPaymentsHandler) handle(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error) {
	logData := logging.GetLogData(ctx)
	accountID, from, to, err := parseListPaymentsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listPaymentsMs")
	}
	payments, err := h.PaymentService.ListPayments(ctx, accountID, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapActionError(err, "failed to list payments")
	}

	if logData != nil {
		logData.AddData("paymentCount", len(payments))
	}

	resp := ListPaymentsResponseBody{
		Payments: make([]Payment, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = fromService(p)
	}

	return &ListPaymentsOutput{Body: resp}, nil
}
