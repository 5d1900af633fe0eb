package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fintrackhq/fintrack-server/internal/auth"
	"github.com/fintrackhq/fintrack-server/internal/storage"
	"github.com/fintrackhq/fintrack-server/internal/storage/user"
)

// UserService handles user registration, lookup, and login verification.
// It never touches the balance field; only the transaction workflow and
// reconciliation do.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// RegisterUser creates a new user with a hashed credential and a zero balance.
func (s *UserService) RegisterUser(ctx context.Context, input RegisterUserInput) (*User, error) {
	var missing []string
	if input.Username == "" {
		missing = append(missing, "username")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	existing, err := s.storage.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if existing != nil {
		return nil, &BusinessRuleError{Message: "User with this email already exists"}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, &PersistenceError{Op: "hash password", Err: err}
	}

	id, err := s.storage.Users.Insert(ctx, &user.UserCreate{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Profile:      profileToStorage(input.Profile),
	})
	if err != nil {
		return nil, &PersistenceError{Op: "insert user", Err: err}
	}

	return s.GetUser(ctx, id)
}

// Authenticate verifies an email/password pair and returns the user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "User"}
	}
	if !auth.CheckPassword(password, row.PasswordHash) {
		return nil, &BusinessRuleError{Message: "Invalid password"}
	}

	converted := userFromStorage(row)
	return &converted, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "User"}
	}
	converted := userFromStorage(row)
	return &converted, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list users", Err: err}
	}
	converted := make([]User, len(rows))
	for i, row := range rows {
		converted[i] = userFromStorage(row)
	}
	return converted, nil
}

// DeleteUser removes a user and returns the removed record.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (*User, error) {
	existing, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.storage.Users.Delete(ctx, id); err != nil {
		return nil, &PersistenceError{Op: "delete user", Err: err}
	}
	return existing, nil
}
