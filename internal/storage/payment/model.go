package payment

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Payment represents a payment record. AccountBalance is the cached running
// balance of the charged account immediately after this payment, written by
// the recalculation pass.
type Payment struct {
	ID                 uuid.UUID          `db:"id"`
	Date               time.Time          `db:"date"`
	Amount             decimal.Decimal    `db:"amount"`
	Type               ledger.PaymentType `db:"type"`
	ChargedAccountID   uuid.UUID          `db:"charged_account_id"`
	TargetAccountID    uuid.NullUUID      `db:"target_account_id"`
	CategoryID         uuid.NullUUID      `db:"category_id"`
	RecurringPaymentID uuid.NullUUID      `db:"recurring_payment_id"`
	IsCleared          bool               `db:"is_cleared"`
	Note               string             `db:"note"`
	AccountBalance     decimal.Decimal    `db:"account_balance"`
	CreatedAt          time.Time          `db:"created_at"`
}

// PaymentCreate is the input for creating a new payment.
type PaymentCreate struct {
	Date               time.Time
	Amount             decimal.Decimal
	Type               ledger.PaymentType
	ChargedAccountID   uuid.UUID
	TargetAccountID    uuid.NullUUID
	CategoryID         uuid.NullUUID
	RecurringPaymentID uuid.NullUUID
	IsCleared          bool
	Note               string
}

// DateWindow bounds a payment query. Zero fields mean unbounded on that side.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// Store defines payment storage operations.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	Insert(ctx context.Context, create *PaymentCreate) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateAccountBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	// ListForAccount returns every payment charged to or targeting the
	// account within the window, ordered by (date, created_at, id).
	ListForAccount(ctx context.Context, accountID uuid.UUID, window *DateWindow) ([]*Payment, error)
	CountByRecurringPayment(ctx context.Context, recurringPaymentID uuid.UUID) (int64, error)
}

// EntryFor maps the payment onto a ledger entry from the given account's
// point of view.
func (p *Payment) EntryFor(accountID uuid.UUID) ledger.Entry {
	role := ledger.RoleCharged
	if p.ChargedAccountID != accountID {
		role = ledger.RoleTarget
	}
	return ledger.Entry{
		PaymentID: p.ID,
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
		Type:      p.Type,
		Amount:    p.Amount,
		Role:      role,
		Snapshot:  p.AccountBalance,
	}
}
