package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-server/internal/service"
	"github.com/fintrackhq/fintrack-server/internal/storage"
	"github.com/fintrackhq/fintrack-server/internal/storage/category"
)

// ReconcileBalance recomputes a user's balance from the committed transaction
// set and persists it. This is the recovery path for a balance left stale by
// a crash between the transaction write and the balance write, or by the
// unvalidated update path. It runs on the queue keyed by UserID so it cannot
// interleave with a concurrent creation.
type ReconcileBalance struct {
	UserID uuid.UUID

	// Result holds the recomputed balance after a successful Perform.
	Result decimal.Decimal

	IAction
}

func (a *ReconcileBalance) Perform(ctx context.Context, store *storage.Storage) error {
	usr, err := store.Users.FindByID(ctx, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "find user", Err: err}
	}
	if usr == nil {
		return &service.NotFoundError{Entity: "User"}
	}

	transactions, err := store.Transactions.ListByUser(ctx, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "list transactions", Err: err}
	}

	balance := decimal.Zero
	for _, tx := range transactions {
		switch category.CategoryType(tx.Category.Type) {
		case category.TypeIncome:
			balance = balance.Add(tx.Amount)
		case category.TypeExpense:
			balance = balance.Sub(tx.Amount)
		}
	}

	if err := store.Users.UpdateBalance(ctx, a.UserID, balance); err != nil {
		return &service.PersistenceError{Op: "update balance", Err: err}
	}

	a.Result = balance
	return nil
}
