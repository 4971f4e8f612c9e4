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

// RecurrenceSpec describes the template to create alongside a recurring
// payment. The payment's own date is the template start date.
type RecurrenceSpec struct {
	Interval  ledger.RecurrenceInterval
	EndDate   time.Time
	IsEndless bool
}

// CreatePayment persists a payment, optionally creates and links a recurring
// template, and recalculates every affected account. Result carries the
// stored payment including its recalculated snapshot.
type CreatePayment struct {
	Date             time.Time
	Amount           decimal.Decimal
	Type             ledger.PaymentType
	ChargedAccountID uuid.UUID
	TargetAccountID  uuid.NullUUID
	CategoryID       uuid.NullUUID
	Note             string
	Recurrence       *RecurrenceSpec

	Result *payment.Payment
}

func (a *CreatePayment) validate() error {
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

func (a *CreatePayment) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := a.validate(); err != nil {
		return err
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

	var recurringID uuid.NullUUID
	if a.Recurrence != nil {
		if err := ledger.ValidateRecurrence(a.Date, a.Recurrence.EndDate, a.Recurrence.IsEndless); err != nil {
			return err
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
			return err
		}
		recurringID = uuid.NullUUID{UUID: template.ID, Valid: true}
	}

	created, err := writer.Payment.Insert(ctx, &payment.PaymentCreate{
		Date:               a.Date,
		Amount:             a.Amount,
		Type:               a.Type,
		ChargedAccountID:   a.ChargedAccountID,
		TargetAccountID:    a.TargetAccountID,
		CategoryID:         a.CategoryID,
		RecurringPaymentID: recurringID,
		IsCleared:          !a.Date.After(time.Now()),
		Note:               a.Note,
	})
	if err != nil {
		return err
	}

	if err := recalculateAccounts(ctx, writer, a.ChargedAccountID, a.TargetAccountID.UUID); err != nil {
		return err
	}

	// Reload so the result carries the snapshot the recalculation wrote.
	a.Result, err = writer.Payment.FindByID(ctx, created.ID)
	return err
}
