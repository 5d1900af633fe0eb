package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    []Category `json:"data"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the service dependency of the list handler.
type categoryLister interface {
	ListCategories(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /category.
type ListCategoriesHandler struct {
	Categories categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(categories categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{Categories: categories}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/category",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	cats, err := h.Categories.ListCategories(ctx)
	if err != nil {
		return nil, respond.Error(err, "Failed to list categories")
	}

	data := make([]Category, len(cats))
	for i, cat := range cats {
		data[i] = categoryToAPI(cat)
	}

	return &ListCategoriesOutput{
		Body: ListCategoriesResponseBody{
			Success: true,
			Message: "Categories retrieved successfully",
			Data:    data,
		},
	}, nil
}
