package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
	"github.com/carson-networks/ledger-server/internal/storage/recurringpayment"
)

// UpdatePayment replaces a payment's field set. The old effect is retracted
// and the new one applied by recalculating every account the payment touched
// before or after the edit. A nil Recurrence on a previously recurring
// payment detaches it; UpdateRecurring controls whether an edit also
// rewrites the linked template.
type UpdatePayment struct {
	ID               uuid.UUID
	Date             time.Time
	Amount           decimal.Decimal
	Type             ledger.PaymentType
	ChargedAccountID uuid.UUID
	TargetAccountID  uuid.NullUUID
	CategoryID       uuid.NullUUID
	Note             string
	Recurrence       *RecurrenceSpec
	UpdateRecurring  bool

	Result *payment.Payment
}

func (a *UpdatePayment) validate() error {
	if !a.Amount.IsPositive() {
		return ledger.ErrNonPositiveAmount
	}
	if a.Type == ledger.Transfer {
		if !a.TargetAccountID.Valid {
			return ledger.ErrTargetAccountRequired
		}
		if a.TargetAccountID.UUID == a.ChargedAccountID {
			return ledger.ErrSameAccountTransfer
		}
	} else if a.TargetAccountID.Valid {
		return ledger.ErrTargetAccountForbidden
	}
	return nil
}

func (a *UpdatePayment) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := a.validate(); err != nil {
		return err
	}

	existing, err := writer.Payment.FindByID(ctx, a.ID)
	if err != nil {
		return mapNotFound(err, ledger.ErrPaymentNotFound)
	}

	if _, err := writer.Account.FindByIDForUpdate(ctx, a.ChargedAccountID); err != nil {
		return mapNotFound(err, ledger.ErrAccountNotFound)
	}
	if a.TargetAccountID.Valid {
		if _, err := writer.Account.FindByIDForUpdate(ctx, a.TargetAccountID.UUID); err != nil {
			return mapNotFound(err, ledger.ErrAccountNotFound)
		}
	}
	if a.CategoryID.Valid {
		if _, err := writer.Category.FindByID(ctx, a.CategoryID.UUID); err != nil {
			return mapNotFound(err, ledger.ErrCategoryNotFound)
		}
	}

	recurringID, err := a.reconcileRecurrence(ctx, writer, existing)
	if err != nil {
		return err
	}

	updated := *existing
	updated.Date = a.Date
	updated.Amount = a.Amount
	updated.Type = a.Type
	updated.ChargedAccountID = a.ChargedAccountID
	updated.TargetAccountID = a.TargetAccountID
	updated.CategoryID = a.CategoryID
	updated.RecurringPaymentID = recurringID
	updated.Note = a.Note
	updated.IsCleared = !a.Date.After(time.Now())

	if err := writer.Payment.Update(ctx, &updated); err != nil {
		return err
	}

	err = recalculateAccounts(ctx, writer,
		existing.ChargedAccountID, existing.TargetAccountID.UUID,
		a.ChargedAccountID, a.TargetAccountID.UUID,
	)
	if err != nil {
		return err
	}

	a.Result, err = writer.Payment.FindByID(ctx, a.ID)
	return err
}

// reconcileRecurrence returns the template link the updated payment should
// carry. Disabling recurrence deletes the template when this payment was its
// last reference, mirroring the delete cascade.
func (a *UpdatePayment) reconcileRecurrence(ctx context.Context, writer *storage.Writer, existing *payment.Payment) (uuid.NullUUID, error) {
	switch {
	case a.Recurrence == nil && existing.RecurringPaymentID.Valid:
		count, err := writer.Payment.CountByRecurringPayment(ctx, existing.RecurringPaymentID.UUID)
		if err != nil {
			return uuid.NullUUID{}, err
		}
		if count <= 1 {
			if err := writer.RecurringPayment.Delete(ctx, existing.RecurringPaymentID.UUID); err != nil {
				return uuid.NullUUID{}, err
			}
		}
		return uuid.NullUUID{}, nil

	case a.Recurrence != nil && existing.RecurringPaymentID.Valid:
		if !a.UpdateRecurring {
			return existing.RecurringPaymentID, nil
		}
		if err := ledger.ValidateRecurrence(a.Date, a.Recurrence.EndDate, a.Recurrence.IsEndless); err != nil {
			return uuid.NullUUID{}, err
		}
		template, err := writer.RecurringPayment.FindByID(ctx, existing.RecurringPaymentID.UUID)
		if err != nil {
			return uuid.NullUUID{}, err
		}
		template.Interval = a.Recurrence.Interval
		template.StartDate = a.Date
		template.EndDate = a.Recurrence.EndDate
		template.IsEndless = a.Recurrence.IsEndless
		template.Amount = a.Amount
		template.Type = a.Type
		template.ChargedAccountID = a.ChargedAccountID
		template.TargetAccountID = a.TargetAccountID
		template.CategoryID = a.CategoryID
		template.Note = a.Note
		if err := writer.RecurringPayment.Update(ctx, template); err != nil {
			return uuid.NullUUID{}, err
		}
		return existing.RecurringPaymentID, nil

	case a.Recurrence != nil:
		if err := ledger.ValidateRecurrence(a.Date, a.Recurrence.EndDate, a.Recurrence.IsEndless); err != nil {
			return uuid.NullUUID{}, err
		}
		template, err := writer.RecurringPayment.Insert(ctx, &recurringpayment.RecurringPaymentCreate{
			Interval:         a.Recurrence.Interval,
			StartDate:        a.Date,
			EndDate:          a.Recurrence.EndDate,
			IsEndless:        a.Recurrence.IsEndless,
			Amount:           a.Amount,
			Type:             a.Type,
			ChargedAccountID: a.ChargedAccountID,
			TargetAccountID:  a.TargetAccountID,
			CategoryID:       a.CategoryID,
			Note:             a.Note,
		})
		if err != nil {
			return uuid.NullUUID{}, err
		}
		return uuid.NullUUID{UUID: template.ID, Valid: true}, nil
	}

	return uuid.NullUUID{}, nil
}
