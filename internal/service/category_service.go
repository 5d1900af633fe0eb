package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/storage"
	"github.com/fintrackhq/fintrack-server/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Icon        string
	Color       string
	Description string
}

// CategoryInput is the input for creating or updating a category.
type CategoryInput struct {
	Name        string
	Type        string
	Icon        string
	Color       string
	Description string
}

// CategoryService handles category business logic. Categories are read-only
// from the transaction workflow's point of view.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory creates a new category with a unique name.
func (s *CategoryService) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	existing, err := s.storage.Categories.FindByName(ctx, input.Name)
	if err != nil {
		return nil, &PersistenceError{Op: "find category", Err: err}
	}
	if existing != nil {
		return nil, &BusinessRuleError{Message: "Category with this name already exists"}
	}

	id, err := s.storage.Categories.Insert(ctx, &category.CategoryCreate{
		Name:        input.Name,
		Type:        category.CategoryType(input.Type),
		Icon:        input.Icon,
		Color:       input.Color,
		Description: input.Description,
	})
	if err != nil {
		return nil, &PersistenceError{Op: "insert category", Err: err}
	}

	row, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "find category", Err: err}
	}
	converted := categoryFromStorage(row)
	return &converted, nil
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list categories", Err: err}
	}
	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = categoryFromStorage(row)
	}
	return converted, nil
}

// UpdateCategory rewrites a category's name and type. Committed transactions
// keep their snapshots; edits never rewrite history.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	row, err := s.storage.Categories.Update(ctx, id, &category.CategoryUpdate{
		Name: input.Name,
		Type: category.CategoryType(input.Type),
	})
	if err != nil {
		return nil, &PersistenceError{Op: "update category", Err: err}
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "Category"}
	}
	converted := categoryFromStorage(row)
	return &converted, nil
}

// DeleteCategory removes a category and returns the removed record.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	row, err := s.storage.Categories.Delete(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "delete category", Err: err}
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "Category"}
	}
	converted := categoryFromStorage(row)
	return &converted, nil
}

func validateCategoryInput(input CategoryInput) error {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if !category.CategoryType(input.Type).Valid() {
		return &BusinessRuleError{Message: "Category type must be income or expense"}
	}
	return nil
}

func categoryFromStorage(row *category.Category) Category {
	return Category{
		ID:          row.ID,
		Name:        row.Name,
		Type:        string(row.Type),
		Icon:        row.Icon,
		Color:       row.Color,
		Description: row.Description,
	}
}
