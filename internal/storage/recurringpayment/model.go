package recurringpayment

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// RecurringPayment is the template a repeating payment is materialized from.
// It carries the same money fields a generated payment would.
type RecurringPayment struct {
	ID               uuid.UUID                 `db:"id"`
	Interval         ledger.RecurrenceInterval `db:"recurrence_interval"`
	StartDate        time.Time                 `db:"start_date"`
	EndDate          time.Time                 `db:"end_date"`
	IsEndless        bool                      `db:"is_endless"`
	Amount           decimal.Decimal           `db:"amount"`
	Type             ledger.PaymentType        `db:"type"`
	ChargedAccountID uuid.UUID                 `db:"charged_account_id"`
	TargetAccountID  uuid.NullUUID             `db:"target_account_id"`
	CategoryID       uuid.NullUUID             `db:"category_id"`
	Note             string                    `db:"note"`
	CreatedAt        time.Time                 `db:"created_at"`
}

// RecurringPaymentCreate is the input for creating a template.
type RecurringPaymentCreate struct {
	Interval         ledger.RecurrenceInterval
	StartDate        time.Time
	EndDate          time.Time
	IsEndless        bool
	Amount           decimal.Decimal
	Type             ledger.PaymentType
	ChargedAccountID uuid.UUID
	TargetAccountID  uuid.NullUUID
	CategoryID       uuid.NullUUID
	Note             string
}

// Store defines recurring payment storage operations.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecurringPayment, error)
	Insert(ctx context.Context, create *RecurringPaymentCreate) (*RecurringPayment, error)
	Update(ctx context.Context, rp *RecurringPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*RecurringPayment, error)
}
