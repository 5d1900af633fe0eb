package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-server/internal/service"
	"github.com/fintrackhq/fintrack-server/internal/storage"
	"github.com/fintrackhq/fintrack-server/internal/storage/category"
	"github.com/fintrackhq/fintrack-server/internal/storage/transaction"
)

// CreateTransaction validates its inputs, applies the balance delta to the
// owning user, and persists the transaction record. It must be processed on
// the queue keyed by UserID so the balance check-then-write is serialized
// per user.
type CreateTransaction struct {
	Name        string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description string
	UserID      uuid.UUID
	CategoryID  uuid.UUID

	// Result holds the saved transaction after a successful Perform. Its user
	// snapshot carries the updated balance.
	Result *service.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, store *storage.Storage) error {
	var missing []string
	if a.Name == "" {
		missing = append(missing, "name")
	}
	if a.Amount == nil {
		missing = append(missing, "amount")
	}
	if a.Date == nil {
		missing = append(missing, "date")
	}
	if a.UserID == uuid.Nil {
		missing = append(missing, "userId")
	}
	if a.CategoryID == uuid.Nil {
		missing = append(missing, "categoryId")
	}
	if len(missing) > 0 {
		return &service.ValidationError{Fields: missing}
	}

	usr, err := store.Users.FindByID(ctx, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "find user", Err: err}
	}
	if usr == nil {
		return &service.NotFoundError{Entity: "User"}
	}

	cat, err := store.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return &service.PersistenceError{Op: "find category", Err: err}
	}
	if cat == nil {
		return &service.NotFoundError{Entity: "Category"}
	}

	amount := *a.Amount
	if amount.IsNegative() {
		if cat.Type == category.TypeIncome {
			return &service.BusinessRuleError{Message: "Income category cannot have negative amount"}
		}
		return &service.BusinessRuleError{Message: "Amount cannot be negative"}
	}

	var newBalance decimal.Decimal
	if cat.Type == category.TypeIncome {
		newBalance = usr.Balance.Add(amount)
	} else {
		if usr.Balance.LessThan(amount) {
			return &service.BusinessRuleError{Message: "Insufficient balance"}
		}
		newBalance = usr.Balance.Sub(amount)
	}

	// Ledger fact first, derived balance second. A crash between the two
	// writes leaves an un-applied balance, which reconciliation can repair;
	// the reverse order would leave a balance with no backing record.
	saved, err := store.Transactions.Insert(ctx, &transaction.TransactionCreate{
		Name:        a.Name,
		Amount:      amount,
		Description: a.Description,
		Date:        *a.Date,
		UserID:      usr.ID,
		User: transaction.UserSnapshot{
			ID:       usr.ID,
			Username: usr.Username,
			Email:    usr.Email,
			Balance:  newBalance,
		},
		Category: transaction.CategorySnapshot{
			ID:   cat.ID,
			Name: cat.Name,
			Type: string(cat.Type),
		},
	})
	if err != nil {
		return &service.PersistenceError{Op: "insert transaction", Err: err}
	}

	if err := store.Users.UpdateBalance(ctx, usr.ID, newBalance); err != nil {
		// The transaction record must not outlive a failed balance write.
		// The delete runs even when the request context is already gone.
		if delErr := store.Transactions.Delete(context.WithoutCancel(ctx), saved.ID); delErr != nil {
			err = multierror.Append(err, delErr)
		}
		return &service.PersistenceError{Op: "update balance", Err: err}
	}

	converted := service.TransactionFromStorage(saved)
	a.Result = &converted
	return nil
}
