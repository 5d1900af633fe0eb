package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// UserSnapshot is the owning user's state copied into the transaction at
// creation time. Later edits to the user never rewrite it.
type UserSnapshot struct {
	ID       uuid.UUID       `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Balance  decimal.Decimal `json:"balance"`
}

// CategorySnapshot is the category's state copied into the transaction at
// creation time.
type CategorySnapshot struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	UserID      uuid.UUID
	User        UserSnapshot
	Category    CategorySnapshot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Name        string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	UserID      uuid.UUID
	User        UserSnapshot
	Category    CategorySnapshot
}

// TransactionUpdate is a field patch. Nil fields are left unchanged.
type TransactionUpdate struct {
	Name        *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
