package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fintrackhq/fintrack-server/internal/handlers/v1/respond"
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name        string `json:"name,omitempty" doc:"Unique category name"`
	Type        string `json:"type,omitempty" doc:"income or expense"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponseBody is the response body for creating a category.
type CreateCategoryResponseBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    Category `json:"data"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponseBody
}

// categoryCreator is the service dependency of the create handler.
type categoryCreator interface {
	CreateCategory(ctx context.Context, input service.CategoryInput) (*service.Category, error)
}

// CreateCategoryHandler handles POST /category.
type CreateCategoryHandler struct {
	Categories categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(categories categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{Categories: categories}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/category",
		Summary:     "Create category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	cat, err := h.Categories.CreateCategory(ctx, service.CategoryInput{
		Name:        input.Body.Name,
		Type:        input.Body.Type,
		Icon:        input.Body.Icon,
		Color:       input.Body.Color,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, respond.Error(err, "Failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body: CreateCategoryResponseBody{
			Success: true,
			Message: "Category created successfully",
			Data:    categoryToAPI(*cat),
		},
	}, nil
}
