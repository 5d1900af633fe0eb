package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// User represents a user record with its denormalized running balance.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Balance      decimal.Decimal
	Profile      *Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the optional nested profile record.
type Profile struct {
	FirstName   string     `json:"firstName,omitempty"`
	LastName    string     `json:"lastName,omitempty"`
	NickName    string     `json:"nickName,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	Email        string
	PasswordHash string
	Profile      *Profile
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*User, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
