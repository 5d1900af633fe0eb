package service

import (
	"github.com/fintrackhq/fintrack-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	User        *UserService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		User:        NewUserService(store),
		Category:    NewCategoryService(store),
	}
}
