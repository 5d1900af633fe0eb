package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// UpdateCategoryBody is the request body for updating a category.
type UpdateCategoryBody struct {
	Name string `json:"name,omitempty" doc:"New unique category name"`
	Type string `json:"type,omitempty" doc:"income or expense"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryResponseBody is the response body for updating a category.
type UpdateCategoryResponseBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    Category `json:"data"`
}

// UpdateCategoryOutput is the Huma output for updating a category.
type UpdateCategoryOutput struct {
	Body UpdateCategoryResponseBody
}

// categoryUpdater is the service dependency of the update handler.
type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id uuid.UUID, input service.CategoryInput) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /category/{id}.
type UpdateCategoryHandler struct {
	Categories categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(categories categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{Categories: categories}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/category/{id}",
		Summary:     "Update category",
		Description: "Rewrites a category's name and type. Existing transaction snapshots are unaffected.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusNotFound, "Category not found")
	}

	cat, err := h.Categories.UpdateCategory(ctx, id, service.CategoryInput{
		Name: input.Body.Name,
		Type: input.Body.Type,
	})
	if err != nil {
		return nil, respond.Error(err, "Failed to update category")
	}

	return &UpdateCategoryOutput{
		Body: UpdateCategoryResponseBody{
			Success: true,
			Message: "Category updated successfully",
			Data:    categoryToAPI(*cat),
		},
	}, nil
}
