package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
)

const defaultCategoryLimit = 50

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Note      string
	CreatedAt time.Time
}

// CategoryCursor identifies a position in a paginated result set.
type CategoryCursor struct {
	Position int
	Limit    int
}

// CategoryService handles category read logic.
type CategoryService struct {
	reader *storage.Reader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader *storage.Reader) *CategoryService {
	return &CategoryService{reader: reader}
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	row, err := s.reader.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	converted := categoryFromStorage(row)
	return &converted, nil
}

// ListCategories returns a page of categories using cursor pagination.
func (s *CategoryService) ListCategories(ctx context.Context, cursor *CategoryCursor) ([]Category, *CategoryCursor, error) {
	limit := defaultCategoryLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	rows, err := s.reader.Categories.List(ctx, &category.CategoryFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *CategoryCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &CategoryCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = categoryFromStorage(row)
	}
	return converted, nextCursor, nil
}

func categoryFromStorage(row *category.Category) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Note:      row.Note,
		CreatedAt: row.CreatedAt,
	}
}
