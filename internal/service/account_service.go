package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

const defaultAccountLimit = 20

// Account represents an account in the service layer.
type Account struct {
	ID               uuid.UUID
	Name             string
	CurrentBalance   decimal.Decimal
	StartingBalance  decimal.Decimal
	ExcludeFromStats bool
	Note             string
	CreatedAt        time.Time
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// AccountService handles account read logic.
type AccountService struct {
	reader *storage.Reader
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader *storage.Reader) *AccountService {
	return &AccountService{reader: reader}
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.reader.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := accountFromStorage(row)
	return &converted, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.reader.Accounts.List(ctx, &account.AccountFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = accountFromStorage(row)
	}
	return converted, nextCursor, nil
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:               row.ID,
		Name:             row.Name,
		CurrentBalance:   row.CurrentBalance,
		StartingBalance:  row.StartingBalance,
		ExcludeFromStats: row.ExcludeFromStats,
		Note:             row.Note,
		CreatedAt:        row.CreatedAt,
	}
}
