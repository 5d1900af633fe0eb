package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer. User and
// Category are the snapshots taken at creation time, not live references.
type Transaction struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	User        TransactionUser
	Category    TransactionCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionUser is the snapshotted owner of a transaction.
type TransactionUser struct {
	ID       uuid.UUID
	Username string
	Email    string
	Balance  decimal.Decimal
}

// TransactionCategory is the snapshotted category of a transaction.
type TransactionCategory struct {
	ID   uuid.UUID
	Name string
	Type string
}

// TransactionPatch is a field patch for an existing transaction. Nil fields
// are left unchanged.
type TransactionPatch struct {
	Name        *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
}

// TransactionListing is a user's transactions with the derived totals.
// TotalIncome and TotalExpense are recomputed by scanning the listed
// transactions; TotalBalance is the user's stored balance, trusted as-is.
type TransactionListing struct {
	Transactions []Transaction
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	TotalBalance decimal.Decimal
}
