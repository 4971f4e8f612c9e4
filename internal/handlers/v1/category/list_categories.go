package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListCategoriesCursor represents a pagination cursor in request and response
// bodies.
type ListCategoriesCursor struct {
	Position int `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
}

// ListCategoriesBody is the request body for listing categories.
type ListCategoriesBody struct {
	Cursor *ListCategoriesCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Body ListCategoriesBody
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category            `json:"categories" doc:"Page of categories"`
	NextCursor *ListCategoriesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context, cursor *service.CategoryCursor) ([]service.Category, *service.CategoryCursor, error)
}

// ListCategoriesHandler handles POST /v1/category/list.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodPost,
		Path:        "/v1/category/list",
		Summary:     "List categories",
		Description: "Returns a paginated list of categories using cursor-based pagination.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	var requestCursor *service.CategoryCursor
	if input.Body.Cursor != nil {
		requestCursor = &service.CategoryCursor{
			Position: input.Body.Cursor.Position,
			Limit:    input.Body.Cursor.Limit,
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	categories, nextCursor, err := h.CategoryService.ListCategories(ctx, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(categories)),
	}
	for i, cat := range categories {
		resp.Categories[i] = fromService(cat)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListCategoriesCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
