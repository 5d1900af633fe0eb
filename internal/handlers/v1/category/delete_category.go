package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// DeleteCategoryResponseBody is the response body for deleting a category.
type DeleteCategoryResponseBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    Category `json:"data"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Body DeleteCategoryResponseBody
}

// categoryDeleter is the service dependency of the delete handler.
type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id uuid.UUID) (*service.Category, error)
}

// DeleteCategoryHandler handles DELETE /category/{id}.
type DeleteCategoryHandler struct {
	Categories categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(categories categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Categories: categories}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/category/{id}",
		Summary:     "Delete category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "Category not found")
	}

	cat, err := h.Categories.DeleteCategory(ctx, id)
	if err != nil {
		return nil, respond.Error(err, "Failed to delete category")
	}

	return &DeleteCategoryOutput{
		Body: DeleteCategoryResponseBody{
			Success: true,
			Message: "Category deleted successfully",
			Data:    categoryToAPI(*cat),
		},
	}, nil
}
