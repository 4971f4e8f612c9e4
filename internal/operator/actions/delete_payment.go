package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeletePayment removes a payment and recalculates the accounts it touched.
// DeleteRecurring forces the linked template away with it; otherwise the
// template only goes when this was its last remaining payment.
type DeletePayment struct {
	ID              uuid.UUID
	DeleteRecurring bool
}

func (a *DeletePayment) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Payment.FindByID(ctx, a.ID)
	if err != nil {
		return mapNotFound(err, ledger.ErrPaymentNotFound)
	}

	if err := writer.Payment.Delete(ctx, a.ID); err != nil {
		return err
	}

	if existing.RecurringPaymentID.Valid {
		remaining, err := writer.Payment.CountByRecurringPayment(ctx, existing.RecurringPaymentID.UUID)
		if err != nil {
			return err
		}
		if a.DeleteRecurring || remaining == 0 {
			if err := writer.RecurringPayment.Delete(ctx, existing.RecurringPaymentID.UUID); err != nil {
				return err
			}
		}
	}

	return recalculateAccounts(ctx, writer,
		existing.ChargedAccountID, existing.TargetAccountID.UUID)
}
