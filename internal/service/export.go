package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/recurringpayment"
)

// ExportService builds full-database snapshots for backup uploads.
type ExportService struct {
	reader *storage.Reader
}

// NewExportService creates a new ExportService.
func NewExportService(reader *storage.Reader) *ExportService {
	return &ExportService{reader: reader}
}

// RecurringPayment represents a recurring template in the service layer.
type RecurringPayment struct {
	ID               uuid.UUID
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
	CreatedAt        time.Time
}

type exportDocument struct {
	ExportedAt         time.Time          `json:"exported_at"`
	LastDatabaseUpdate time.Time          `json:"last_database_update"`
	Accounts           []Account          `json:"accounts"`
	Payments           []Payment          `json:"payments"`
	RecurringPayments  []RecurringPayment `json:"recurring_payments"`
	Categories         []Category         `json:"categories"`
}

// Snapshot serializes all accounts, payments and categories as a single JSON
// document. Each payment appears once, keyed by its charged account, so
// transfers are not duplicated across the two accounts they touch.
func (s *ExportService) Snapshot(ctx context.Context) ([]byte, error) {
	accounts, err := s.reader.Accounts.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	doc := exportDocument{
		ExportedAt: time.Now().UTC(),
		Accounts:   make([]Account, len(accounts)),
		Payments:   []Payment{},
	}

	for i, acct := range accounts {
		doc.Accounts[i] = accountFromStorage(acct)

		rows, err := s.reader.Payments.ListForAccount(ctx, acct.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("listing payments for account %s: %w", acct.ID, err)
		}
		for _, row := range rows {
			if row.ChargedAccountID != acct.ID {
				continue
			}
			doc.Payments = append(doc.Payments, paymentFromStorage(row))
		}
	}

	templates, err := s.reader.RecurringPayments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recurring payments: %w", err)
	}
	doc.RecurringPayments = make([]RecurringPayment, len(templates))
	for i, tpl := range templates {
		doc.RecurringPayments[i] = recurringFromStorage(tpl)
	}

	categories, err := s.reader.Categories.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	doc.Categories = make([]Category, len(categories))
	for i, cat := range categories {
		doc.Categories[i] = categoryFromStorage(cat)
	}

	stamp, err := s.reader.Settings.LastDatabaseUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading last database update: %w", err)
	}
	doc.LastDatabaseUpdate = stamp

	return json.Marshal(doc)
}

func recurringFromStorage(row *recurringpayment.RecurringPayment) RecurringPayment {
	return RecurringPayment{
		ID:               row.ID,
		Interval:         row.Interval,
		StartDate:        row.StartDate,
		EndDate:          row.EndDate,
		IsEndless:        row.IsEndless,
		Amount:           row.Amount,
		Type:             row.Type,
		ChargedAccountID: row.ChargedAccountID,
		TargetAccountID:  row.TargetAccountID,
		CategoryID:       row.CategoryID,
		Note:             row.Note,
		CreatedAt:        row.CreatedAt,
	}
}
