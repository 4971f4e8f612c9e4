package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/payment"
)

// Payment represents a payment in the service layer.
type Payment struct {
	ID                 uuid.UUID
	Date               time.Time
	Amount             decimal.Decimal
	Type               ledger.PaymentType
	ChargedAccountID   uuid.UUID
	TargetAccountID    uuid.NullUUID
	CategoryID         uuid.NullUUID
	RecurringPaymentID uuid.NullUUID
	IsCleared          bool
	Note               string
	AccountBalance     decimal.Decimal
	CreatedAt          time.Time
}

// PaymentService handles payment read logic.
type PaymentService struct {
	reader *storage.Reader
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(reader *storage.Reader) *PaymentService {
	return &PaymentService{reader: reader}
}

// GetPayment retrieves a single payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	row, err := s.reader.Payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := paymentFromStorage(row)
	return &converted, nil
}

// ListPayments returns every payment touching the account within the window,
// ordered oldest first. The account must exist. Zero window bounds mean
// unbounded on that side.
func (s *PaymentService) ListPayments(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]Payment, error) {
	if _, err := s.reader.Accounts.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}

	var window *payment.DateWindow
	if !from.IsZero() || !to.IsZero() {
		window = &payment.DateWindow{From: from, To: to}
	}

	rows, err := s.reader.Payments.ListForAccount(ctx, accountID, window)
	if err != nil {
		return nil, err
	}

	converted := make([]Payment, len(rows))
	for i, row := range rows {
		converted[i] = paymentFromStorage(row)
	}
	return converted, nil
}

func paymentFromStorage(row *payment.Payment) Payment {
	return Payment{
		ID:                 row.ID,
		Date:               row.Date,
		Amount:             row.Amount,
		Type:               row.Type,
		ChargedAccountID:   row.ChargedAccountID,
		TargetAccountID:    row.TargetAccountID,
		CategoryID:         row.CategoryID,
		RecurringPaymentID: row.RecurringPaymentID,
		IsCleared:          row.IsCleared,
		Note:               row.Note,
		AccountBalance:     row.AccountBalance,
		CreatedAt:          row.CreatedAt,
	}
}
