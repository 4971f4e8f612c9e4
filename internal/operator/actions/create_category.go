package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

// CreateCategory persists a new category tag.
type CreateCategory struct {
	Name string
	Note string

	Result *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Category.Insert(ctx, &category.CategoryCreate{
		Name: a.Name,
		Note: a.Note,
	})
	if err != nil {
		return err
	}

	a.Result = created
	return nil
}
