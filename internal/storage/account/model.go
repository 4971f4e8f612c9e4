package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID               uuid.UUID       `db:"id"`
	Name             string          `db:"name"`
	CurrentBalance   decimal.Decimal `db:"current_balance"`
	StartingBalance  decimal.Decimal `db:"starting_balance"`
	ExcludeFromStats bool            `db:"exclude_from_stats"`
	Note             string          `db:"note"`
	CreatedAt        time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name             string
	StartingBalance  decimal.Decimal
	ExcludeFromStats bool
	Note             string
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Limit  int
	Offset int
}

// Store defines account storage operations. The abstraction lets tests swap
// the Bob-backed table for an in-memory fake.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
