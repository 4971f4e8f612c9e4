package payment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	paymentstore "github.com/carson-networks/ledger-server/internal/storage/payment"
)

// Payment is the API response model for a payment.
// It is used only for responses, not for request bodies.
type Payment struct {
	ID                 string `json:"id" doc:"Payment UUID"`
	Date               string `json:"date" doc:"RFC3339 payment date"`
	Amount             string `json:"amount" doc:"Decimal amount, always positive"`
	Type               string `json:"type" doc:"Payment type: expense, income or transfer"`
	ChargedAccountID   string `json:"chargedAccountID" doc:"Account the payment is booked against"`
	TargetAccountID    string `json:"targetAccountID,omitempty" doc:"Receiving account, transfers only"`
	CategoryID         string `json:"categoryID,omitempty" doc:"Category UUID"`
	RecurringPaymentID string `json:"recurringPaymentID,omitempty" doc:"Linked recurring template UUID"`
	IsCleared          bool   `json:"isCleared" doc:"Whether the payment date has passed"`
	Note               string `json:"note,omitempty" doc:"Free-form note"`
	AccountBalance     string `json:"accountBalance" doc:"Charged account balance right after this payment"`
	CreatedAt          string `json:"createdAt" doc:"RFC3339 record creation time"`
}

// RecurrenceBody describes the recurring template attached to a payment.
type RecurrenceBody struct {
	Interval  string `json:"interval" required:"true" enum:"daily,weekly,biweekly,monthly,quarterly,yearly" doc:"Repeat interval"`
	EndDate   string `json:"endDate,omitempty" format:"date-time" doc:"Last occurrence date, ignored when endless"`
	IsEndless bool   `json:"isEndless,omitempty" doc:"Repeat forever"`
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromService(p service.Payment) Payment {
	out := Payment{
		ID:               p.ID.String(),
		Date:             p.Date.Format(time.RFC3339),
		Amount:           p.Amount.String(),
		Type:             p.Type.String(),
		ChargedAccountID: p.ChargedAccountID.String(),
		IsCleared:        p.IsCleared,
		Note:             p.Note,
		AccountBalance:   p.AccountBalance.String(),
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
	if p.TargetAccountID.Valid {
		out.TargetAccountID = p.TargetAccountID.UUID.String()
	}
	if p.CategoryID.Valid {
		out.CategoryID = p.CategoryID.UUID.String()
	}
	if p.RecurringPaymentID.Valid {
		out.RecurringPaymentID = p.RecurringPaymentID.UUID.String()
	}
	return out
}

func fromStorage(p *paymentstore.Payment) Payment {
	out := Payment{
		ID:               p.ID.String(),
		Date:             p.Date.Format(time.RFC3339),
		Amount:           p.Amount.String(),
		Type:             p.Type.String(),
		ChargedAccountID: p.ChargedAccountID.String(),
		IsCleared:        p.IsCleared,
		Note:             p.Note,
		AccountBalance:   p.AccountBalance.String(),
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
	if p.TargetAccountID.Valid {
		out.TargetAccountID = p.TargetAccountID.UUID.String()
	}
	if p.CategoryID.Valid {
		out.CategoryID = p.CategoryID.UUID.String()
	}
	if p.RecurringPaymentID.Valid {
		out.RecurringPaymentID = p.RecurringPaymentID.UUID.String()
	}
	return out
}

// mapActionError turns ledger sentinels into the right HTTP status. Anything
// unrecognized is a 500 with the given summary.
func mapActionError(err error, summary string) error {
	switch {
	case errors.Is(err, ledger.ErrPaymentNotFound),
		errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrCategoryNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrNonPositiveAmount),
		errors.Is(err, ledger.ErrTargetAccountRequired),
		errors.Is(err, ledger.ErrTargetAccountForbidden),
		errors.Is(err, ledger.ErrSameAccountTransfer),
		errors.Is(err, ledger.ErrInvalidEndDate):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, summary, err)
	}
}

func ledgerTypeFromString(value string) (ledger.PaymentType, error) {
	paymentType, err := ledger.ParsePaymentType(value)
	if err != nil {
		return 0, huma.NewError(http.StatusBadRequest, "invalid payment type", err)
	}
	return paymentType, nil
}

func parseOptionalUUID(value, field string) (uuid.NullUUID, error) {
	if value == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.NullUUID{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func parseRecurrence(body *RecurrenceBody) (*actions.RecurrenceSpec, error) {
	if body == nil {
		return nil, nil
	}

	interval, err := ledger.ParseRecurrenceInterval(body.Interval)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurrence interval", err)
	}

	var endDate time.Time
	if body.EndDate != "" {
		endDate, err = time.Parse(time.RFC3339, body.EndDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid recurrence endDate", err)
		}
	}

	return &actions.RecurrenceSpec{
		Interval:  interval,
		EndDate:   endDate,
		IsEndless: body.IsEndless,
	}, nil
}
