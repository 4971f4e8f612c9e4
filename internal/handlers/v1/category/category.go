package category

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	categorystore "github.com/carson-networks/ledger-server/internal/storage/category"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Note      string `json:"note,omitempty" doc:"Free-form note"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 record creation time"`
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

func fromService(c service.Category) Category {
	return Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Note:      c.Note,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(c *categorystore.Category) Category {
	return Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Note:      c.Note,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
