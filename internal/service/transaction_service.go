package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-server/internal/storage"
	"github.com/fintrackhq/fintrack-server/internal/storage/category"
	"github.com/fintrackhq/fintrack-server/internal/storage/transaction"
)

// TransactionService handles the read and patch paths for transactions.
// Creation goes through the operator so balance mutations stay serialized
// per user; it never happens here.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Op: "find transaction", Err: err}
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "Transaction"}
	}
	converted := TransactionFromStorage(row)
	return &converted, nil
}

// UpdateTransaction applies a field patch. It deliberately does not re-run
// the category/balance rules or adjust the owning user's balance; a balance
// that drifts through this path is repaired by reconciliation.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	row, err := s.storage.Transactions.Update(ctx, id, &transaction.TransactionUpdate{
		Name:        patch.Name,
		Amount:      patch.Amount,
		Description: patch.Description,
		Date:        patch.Date,
	})
	if err != nil {
		return nil, &PersistenceError{Op: "update transaction", Err: err}
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "Transaction"}
	}
	converted := TransactionFromStorage(row)
	return &converted, nil
}

// ListTransactionsForUser returns the user's transactions ordered by date
// descending together with the income/expense totals derived from the
// snapshotted category types.
func (s *TransactionService) ListTransactionsForUser(ctx context.Context, userID uuid.UUID) (*TransactionListing, error) {
	usr, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if usr == nil {
		return nil, &NotFoundError{Entity: "User"}
	}

	rows, err := s.storage.Transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "list transactions", Err: err}
	}

	listing := &TransactionListing{
		Transactions: make([]Transaction, len(rows)),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		TotalBalance: usr.Balance,
	}
	for i, row := range rows {
		listing.Transactions[i] = TransactionFromStorage(row)
		switch category.CategoryType(row.Category.Type) {
		case category.TypeIncome:
			listing.TotalIncome = listing.TotalIncome.Add(row.Amount)
		case category.TypeExpense:
			listing.TotalExpense = listing.TotalExpense.Add(row.Amount)
		}
	}
	return listing, nil
}

// TransactionFromStorage converts a storage row into the service model.
func TransactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Name:        row.Name,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		User: TransactionUser{
			ID:       row.User.ID,
			Username: row.User.Username,
			Email:    row.User.Email,
			Balance:  row.User.Balance,
		},
		Category: TransactionCategory{
			ID:   row.Category.ID,
			Name: row.Category.Name,
			Type: row.Category.Type,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
