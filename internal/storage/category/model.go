package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// CategoryType is the direction a category applies to a balance.
type CategoryType string

const (
	TypeIncome  CategoryType = "income"
	TypeExpense CategoryType = "expense"
)

// Valid reports whether t is one of the supported category types.
func (t CategoryType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category represents a category record.
type Category struct {
	ID          uuid.UUID
	Name        string
	Type        CategoryType
	Icon        string
	Color       string
	Description string
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name        string
	Type        CategoryType
	Icon        string
	Color       string
	Description string
}

// CategoryUpdate is the input for updating a category.
type CategoryUpdate struct {
	Name string
	Type CategoryType
}

// ICategoryTable defines the interface for category storage operations.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*Category, error)
}
