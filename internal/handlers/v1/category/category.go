// Package category exposes the category management endpoints.
package category

import (
	"github.com/fintrackhq/fintrack-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID          string `json:"id" doc:"Category UUID"`
	Name        string `json:"name"`
	Type        string `json:"type" doc:"income or expense"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

func categoryToAPI(cat service.Category) Category {
	return Category{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Type:        cat.Type,
		Icon:        cat.Icon,
		Color:       cat.Color,
		Description: cat.Description,
	}
}
