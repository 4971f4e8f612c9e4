package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category is a simple tag on payments, no balance semantics.
type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name string
	Note string
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Limit  int
	Offset int
}

// Store defines category storage operations.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
}
